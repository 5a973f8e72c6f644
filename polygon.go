package main

// Polygon is one spawned copy of the hexagon. It only remembers when it was
// spawned and the rotation it started with. Everything else (scale, rotation,
// opacity) is derived from its age during a render pass.
type Polygon struct {
	CreatedAt  int64   // milliseconds, on the loop's clock
	StartAngle float64 // degrees
}

// Age returns how long the polygon has been alive at time now. A polygon
// can't be younger than 0, even if the clock reports a time before it was
// spawned.
func (p Polygon) Age(now int64) int64 {
	return max(now-p.CreatedAt, 0)
}

// Pool holds the live polygons in the order in which they were spawned.
// The order only matters for drawing: older polygons get drawn first.
type Pool struct {
	Polygons []Polygon
}

func (p *Pool) Add(pg Polygon) {
	p.Polygons = append(p.Polygons, pg)
}

func (p *Pool) Len() int {
	return len(p.Polygons)
}

func (p *Pool) Clear() {
	p.Polygons = p.Polygons[:0]
}

// Retain keeps only the polygons for which keep returns true, preserving
// their order. keep is called exactly once per polygon, in spawn order, so
// it is fine for it to have side effects like drawing the polygon.
func (p *Pool) Retain(keep func(pg Polygon) bool) {
	n := 0
	for i := range p.Polygons {
		if keep(p.Polygons[i]) {
			p.Polygons[n] = p.Polygons[i]
			n++
		}
	}
	p.Polygons = p.Polygons[:n]
}
