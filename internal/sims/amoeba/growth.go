package amoeba

// offset is a (row, col) displacement from a nucleus.
type offset struct{ dr, dc int }

// Body rings by growth stage. The first is the full Moore neighbourhood; the
// outer rings leave their corners empty so the body rounds off.
var (
	ringOne = []offset{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	ringTwo   = squareRing(2, 1)
	ringThree = append(squareRing(3, 2), offset{-2, -2}, offset{-2, 2}, offset{2, -2}, offset{2, 2})
)

// squareRing returns the cells at Chebyshev distance r whose other
// coordinate lies within [-span, span].
func squareRing(r, span int) []offset {
	var out []offset
	for k := -span; k <= span; k++ {
		out = append(out, offset{-r, k}, offset{k, -r}, offset{r, k}, offset{k, r})
	}
	return out
}

// bodyRings returns the rings to fill for a nucleus at the given growth.
func (p Params) bodyRings(growth int) [][]offset {
	rings := [][]offset{ringOne}
	if growth > p.StageOne {
		rings = append(rings, ringTwo)
	}
	if growth > p.StageTwo {
		rings = append(rings, ringThree)
	}
	return rings
}

// eatRadius widens the eating distance by one per growth stage passed.
func (p Params) eatRadius(growth int) int {
	r := p.EatRadius
	if growth > p.StageOne {
		r++
	}
	if growth > p.StageTwo {
		r++
	}
	return r
}

// grow paints the body around the nucleus at i for its current growth.
func (a *Amoebae) grow(i int) {
	g := a.Grid
	row, col := g.Row(i), g.Col(i)
	for _, ring := range a.params.bodyRings(a.info[i].growth) {
		for _, o := range ring {
			a.fillBody(g.WrapIndex(row+o.dr, col+o.dc))
		}
	}
}
