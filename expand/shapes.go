package expand

// Sphere returns the canned spherical shape predicate: a position is
// accepted iff the sum of its squared coordinates is strictly below
// radius. Note that the squared distance is compared against the
// un-squared radius parameter — historical behavior that downstream
// numeric results depend on, kept deliberately. Pass radius*radius for
// geometric-radius semantics.
func Sphere(radius float64) ShapeFunc {
	return func(rel []float64) bool {
		sum := 0.0
		for _, x := range rel {
			sum += x * x
		}

		return sum < radius
	}
}

// Box returns the canned box shape predicate: a position is accepted iff
// |rel[d]| < extents[d]/2 on every axis. Axes beyond len(extents) are
// unconstrained.
func Box(extents ...float64) ShapeFunc {
	return func(rel []float64) bool {
		for d, e := range extents {
			if d >= len(rel) {
				break
			}
			if rel[d] >= e/2 || rel[d] <= -e/2 {
				return false
			}
		}

		return true
	}
}
