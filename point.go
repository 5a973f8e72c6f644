package main

import "math"

type Pt struct {
	X float64
	Y float64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) Times(multiply float64) Pt {
	return Pt{p.X * multiply, p.Y * multiply}
}

func (p Pt) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Pt) To(other Pt) Pt {
	return Pt{other.X - p.X, other.Y - p.Y}
}

// Towards returns the point that is dist away from p, on the way to other.
func (p Pt) Towards(other Pt, dist float64) Pt {
	v := p.To(other)
	l := v.Len()
	if l == 0 {
		return p
	}
	return p.Plus(v.Times(dist / l))
}
