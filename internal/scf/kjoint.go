package scf

import (
	"math"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
)

var (
	chartBeta  = cidect.ChartBeta[:]
	chartTheta = cidect.ChartTheta[:]
	chartOChax = rows(cidect.ChartOChax)
	chartObax  = rows(cidect.ChartObax)
	chartBax   = cidect.ChartBaxMin[:]
)

func rows(t [3][2]float64) [][]float64 {
	out := make([][]float64, len(t))
	for i := range t {
		out[i] = t[i][:]
	}
	return out
}

func kCircular(beta, twoGamma, tau, theta float64) (KSet, error) {
	if !(tau > 0 && twoGamma > 0) {
		return KSet{}, &cidect.GeometryError{Quantity: "tau", Value: tau, Msg: "K_CHS formulas need positive tau and 2gamma"}
	}
	deg := cidect.Degrees(theta)

	var s KSet
	var e1, e2, e3 bool
	s.Ochax, e1 = Bilinear(chartBeta, chartTheta, chartOChax, beta, deg)
	s.Obax, e2 = Bilinear(chartBeta, chartTheta, chartObax, beta, deg)
	s.BaxMin, e3 = Linear(chartTheta, chartBax, deg)
	s.Extrapolated = e1 || e2 || e3

	s.Chax = math.Max(cidect.SCFFloor, math.Pow(twoGamma/24, 0.4)*math.Pow(tau/0.5, 1.1)*s.Ochax)
	s.Bax = math.Max(s.BaxMin, math.Sqrt(twoGamma/24)*math.Sqrt(tau/0.5)*s.Obax)
	s.Chch = math.Max(cidect.SCFFloor, 1.2*math.Pow(tau/0.5, 0.3)*math.Pow(math.Sin(theta), -0.9))
	return s, nil
}

func kGap(beta, twoGamma, tau, gPrime, theta float64) (KSet, error) {
	if !(gPrime > 0) {
		return KSet{}, &cidect.GeometryError{Quantity: "g'", Value: gPrime, Msg: "K_GAP_RHS formulas need a positive gap"}
	}
	if !(beta > 0) {
		return KSet{}, &cidect.GeometryError{Quantity: "beta", Value: beta, Msg: "K_GAP_RHS formulas divide by beta"}
	}
	sin := math.Sin(theta)

	chax := (0.48*beta - 0.5*beta*beta - 0.012/beta + 0.012/gPrime) *
		math.Pow(twoGamma, 1.72) * math.Pow(tau, 0.78) * math.Pow(gPrime, 0.2) * math.Pow(sin, 2.09)
	bax := (-0.008 + 0.45*beta - 0.34*beta*beta) *
		math.Pow(twoGamma, 1.36) * math.Pow(tau, -0.66) * math.Pow(sin, 1.29)
	chch := (2.45 + 1.23*beta) * math.Pow(gPrime, -0.27)

	return KSet{
		Chax: math.Max(chax, cidect.SCFFloor),
		Bax:  math.Max(bax, cidect.SCFFloor),
		Chch: math.Max(chch, cidect.SCFFloor),
	}, nil
}

func kOverlap(beta, twoGamma, tau, ov, theta float64) (KSet, error) {
	if !(ov > 0) {
		return KSet{}, &cidect.GeometryError{Quantity: "Ov", Value: ov, Msg: "K_OVERLAP_RHS formulas need a positive overlap"}
	}
	sin := math.Sin(theta)

	chax := (0.5 + 2.38*beta - 2.87*beta*beta + 2.18*beta*ov + 0.39*ov - 1.43*sin) *
		math.Pow(twoGamma, 0.29) * math.Pow(tau, 0.7) *
		math.Pow(ov, 0.73-5.53*sin*sin) * math.Pow(sin, -0.4-0.08*ov)
	bax := (0.15 + 1.1*beta - 0.48*beta*beta - 0.14/ov) *
		math.Pow(twoGamma, 0.55) * math.Pow(tau, -0.3) *
		math.Pow(ov, -2.57+1.62*beta*beta) * math.Pow(sin, 0.31)
	chch := 1.2 + 1.46*beta - 0.028*beta*beta

	return KSet{
		Chax: math.Max(chax, cidect.SCFFloor),
		Bax:  math.Max(bax, cidect.SCFFloor),
		Chch: math.Max(chch, cidect.SCFFloor),
	}, nil
}
