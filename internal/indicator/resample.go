package indicator

// Resample reduces a series to at most roughly maxPoints entries for display
// by keeping every step-th point, where step = ceil(len/maxPoints), plus the
// final point regardless of step alignment. Series that already fit are
// returned unchanged. Purely a presentation-size reducer; no other component
// consumes its output.
func Resample[P any](points []P, maxPoints int) []P {
	if maxPoints <= 0 || len(points) <= maxPoints {
		return points
	}
	step := (len(points) + maxPoints - 1) / maxPoints
	out := make([]P, 0, maxPoints+1)
	for i := 0; i < len(points); i += step {
		out = append(out, points[i])
	}
	if (len(points)-1)%step != 0 {
		out = append(out, points[len(points)-1])
	}
	return out
}
