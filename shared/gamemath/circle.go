package gamemath

// CirclesOverlap reports whether two circles touch or overlap. The test is
// exact: tangent circles (distance equal to the radius sum) count as a hit.
func CirclesOverlap(a Vec2, ar float64, b Vec2, br float64) bool {
	r := ar + br
	return a.Sub(b).LengthSq() <= r*r
}
