package physics

import "math"

// Collidable is anything with a position and a coverage mask.
type Collidable interface {
	Position() (x, y float64)
	Mask() *Mask
}

// Collide reports whether the masks of a and b overlap at their current positions.
// Origins are floored to whole pixels before the offset is taken, so
// Collide(a, b) == Collide(b, a) for every pair.
func Collide(a, b Collidable) bool {
	ax, ay := a.Position()
	bx, by := b.Position()
	dx := int(math.Floor(bx)) - int(math.Floor(ax))
	dy := int(math.Floor(by)) - int(math.Floor(ay))
	return a.Mask().Overlap(b.Mask(), dx, dy)
}
