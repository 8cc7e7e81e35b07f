package scf

// clamp limits v to [lo, hi] and reports whether it had to move
func clamp(v, lo, hi float64) (float64, bool) {
	switch {
	case v < lo:
		return lo, true
	case v > hi:
		return hi, true
	}
	return v, false
}

// bracket returns the index i with xs[i] <= v <= xs[i+1] and the fraction
// of the way from xs[i] to xs[i+1]. xs must be ascending with len >= 2 and
// v already clamped to its range.
func bracket(xs []float64, v float64) (int, float64) {
	i := 0
	for i < len(xs)-2 && v > xs[i+1] {
		i++
	}
	return i, (v - xs[i]) / (xs[i+1] - xs[i])
}

// Linear interpolates ys over xs at x. Outside the table the end value is
// returned and extrapolated is true.
func Linear(xs, ys []float64, x float64) (v float64, extrapolated bool) {
	x, extrapolated = clamp(x, xs[0], xs[len(xs)-1])
	i, f := bracket(xs, x)
	return ys[i] + f*(ys[i+1]-ys[i]), extrapolated
}

// Bilinear interpolates the table z over the grid xs × ys at (x, y).
// z is indexed z[row][col] with rows following ys and columns following xs.
// Points outside the grid are clamped onto its nearest edge.
func Bilinear(xs, ys []float64, z [][]float64, x, y float64) (v float64, extrapolated bool) {
	x, ex := clamp(x, xs[0], xs[len(xs)-1])
	y, ey := clamp(y, ys[0], ys[len(ys)-1])
	i, fx := bracket(xs, x)
	j, fy := bracket(ys, y)

	lower := z[j][i] + fx*(z[j][i+1]-z[j][i])
	upper := z[j+1][i] + fx*(z[j+1][i+1]-z[j+1][i])
	return lower + fy*(upper-lower), ex || ey
}
