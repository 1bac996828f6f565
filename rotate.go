package brief

// Rotation is a unit rotation vector (cos θ, sin θ).
type Rotation struct {
	Cos, Sin float32
}

// IdentityRotation leaves offsets unchanged.
var IdentityRotation = Rotation{Cos: 1, Sin: 0}

// Apply rotates o, truncates each component toward zero and clamps it to
// [-bound, bound].
//
//	dx' = dx·cos θ − dy·sin θ
//	dy' = dx·sin θ + dy·cos θ
func (r Rotation) Apply(o Offset, bound int) Offset {
	x, y := float32(o.DX), float32(o.DY)
	// Explicit conversions round each product and forbid FMA fusion, so the
	// result is the same on every architecture.
	rx := int(float32(x*r.Cos) - float32(y*r.Sin))
	ry := int(float32(x*r.Sin) + float32(y*r.Cos))
	return Offset{DX: clamp(rx, bound), DY: clamp(ry, bound)}
}

// ApplyPair rotates both offsets of a test pair.
func (r Rotation) ApplyPair(p TestPair, bound int) TestPair {
	return TestPair{A: r.Apply(p.A, bound), B: r.Apply(p.B, bound)}
}

func clamp(v, bound int) int {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}
