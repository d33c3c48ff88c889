//go:build !ebiten

package ui

import (
	"graph-life/internal/core"
	"graph-life/internal/render"
)

// Status is the per-frame viewer state shown in the HUD header.
type Status struct {
	Generation int
	Paused     bool
	Rate       float64
	Seed       int64
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int, render.Palette) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(Status) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
