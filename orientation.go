package toroid

// Orientation is the torus spin state: one cached (cos, sin) pair per
// rotation axis. It is a plain value owned by the host; Render only
// reads it and Rotate is the only mutator.
type Orientation struct {
	// Rotation angle A (vertical axis)
	ACos float64
	ASin float64

	// Rotation angle B (horizontal axis)
	BCos float64
	BSin float64
}

// NewOrientation returns the identity orientation (both angles zero).
func NewOrientation() Orientation {
	return Orientation{ACos: 1, BCos: 1}
}

// Rotate advances both angles by da and db radians using the incremental
// recurrence: a first-order rotation of each (cos, sin) pair followed by
// one Newton renormalization step. No transcendental calls are made, so
// the update stays cheap on hosts without a fast math library; the
// renormalization bounds the drift the approximation introduces.
func (o *Orientation) Rotate(da, db float64) {
	o.ACos, o.ASin = advance(o.ACos, o.ASin, da)
	o.BCos, o.BSin = advance(o.BCos, o.BSin, db)
}

// advance rotates the unit vector (c, s) by approximately delta radians.
// Accurate to O(delta³) in angle per step; the renorm keeps cos²+sin²
// within ~delta⁴ of 1 regardless of how many steps accumulate.
func advance(c, s, delta float64) (float64, float64) {
	c, s = c-delta*s, s+delta*c
	return renorm(c, s)
}

// renorm applies one Newton step pulling (c, s) back toward the unit
// circle, far cheaper than a sqrt for vectors already near unit norm.
func renorm(c, s float64) (float64, float64) {
	k := (3 - (c*c + s*s)) / 2
	return c * k, s * k
}
