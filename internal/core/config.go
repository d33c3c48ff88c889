package core

import "strconv"

// Dims holds the grid dimensions shared by every sim config.
type Dims struct {
	Rows int
	Cols int
}

// DefaultDims returns the default grid size.
func DefaultDims() Dims {
	return Dims{Rows: 96, Cols: 128}
}

// DimsFromMap reads "rows" and "cols" from a flag-style map, keeping the
// defaults for missing or invalid entries.
func DimsFromMap(cfg map[string]string) Dims {
	d := DefaultDims()
	IntFromMap(cfg, "rows", &d.Rows, 1)
	IntFromMap(cfg, "cols", &d.Cols, 1)
	return d
}

// IntFromMap parses cfg[key] into dst when present and at least min.
func IntFromMap(cfg map[string]string, key string, dst *int, min int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
		*dst = parsed
	}
}

// FloatFromMap parses cfg[key] into dst when present and within [min, max].
func FloatFromMap(cfg map[string]string, key string, dst *float64, min, max float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min && parsed <= max {
		*dst = parsed
	}
}
