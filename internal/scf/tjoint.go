package scf

import (
	"math"

	"github.com/alexiusacademia/gohsjoint/internal/cidect"
)

// shortChord returns the F2 and F3 corrections for chords with α < 12
func shortChord(beta, gamma, alpha float64) (f2, f3 float64) {
	if alpha >= cidect.ShortChordAlpha {
		return 1, 1
	}
	f2 = 1 - (1.43*beta-0.97*beta*beta-0.03)*math.Pow(gamma, 0.04)*
		math.Exp(-0.71*math.Pow(gamma, -1.38)*math.Pow(alpha, 2.5))
	f3 = 1 - 0.55*math.Pow(beta, 1.8)*math.Pow(gamma, 0.16)*
		math.Exp(-0.49*math.Pow(gamma, -0.89)*math.Pow(alpha, 1.8))
	return f2, f3
}

// tCircular evaluates the Efthymiou set for a CHS T-joint with general
// chord end fixity
func tCircular(beta, gamma, tau, alpha, theta, c1, c2, c3 float64) (TSet, error) {
	switch {
	case !(beta > 0 && beta <= 1):
		return TSet{}, &cidect.GeometryError{Quantity: "beta", Value: beta, Msg: "T_CHS formulas need 0 < beta <= 1"}
	case !(gamma > 0):
		return TSet{}, &cidect.GeometryError{Quantity: "gamma", Value: gamma, Msg: "T_CHS formulas need positive gamma"}
	case !(tau > 0):
		return TSet{}, &cidect.GeometryError{Quantity: "tau", Value: tau, Msg: "T_CHS formulas need positive tau"}
	case !(alpha > 0):
		return TSet{}, &cidect.GeometryError{Quantity: "alpha", Value: alpha, Msg: "T_CHS formulas need positive alpha"}
	}

	b2 := beta * beta
	sin := math.Sin(theta)
	sin2 := math.Sin(2 * theta)

	var s TSet
	s.F2, s.F3 = shortChord(beta, gamma, alpha)

	s.ChordSaddleAx = (gamma*math.Pow(tau, 1.1)*(1.11-3*(beta-0.52)*(beta-0.52))*math.Pow(sin, 1.6) +
		c1*(0.8*alpha-6)*tau*b2*math.Sqrt(1-b2)*sin2*sin2) * s.F2
	s.ChordCrownAx = math.Pow(gamma, 0.2)*tau*(2.65+5*(beta-0.65)*(beta-0.65)) +
		tau*beta*(c2*alpha-3)*sin
	s.BraceSaddleAx = (1.3 + gamma*math.Pow(tau, 0.52)*math.Pow(alpha, 0.1)*
		(0.187-1.25*math.Pow(beta, 1.1)*(beta-0.96))*math.Pow(sin, 2.7-0.01*alpha)) * s.F2
	s.BraceCrownAx = 3 + math.Pow(gamma, 1.2)*(0.12*math.Exp(-4*beta)+0.011*b2-0.045) +
		beta*tau*(c3*alpha-1.2)

	s.ChordCrownIPB = 1.45 * beta * math.Pow(tau, 0.85) * math.Pow(gamma, 1-0.68*beta) * math.Pow(sin, 0.7)
	s.BraceCrownIPB = 1 + 0.65*beta*math.Pow(tau, 0.4)*math.Pow(gamma, 1.09-0.77*beta)*math.Pow(sin, 0.06*gamma-1.16)

	opb := gamma * tau * beta * (1.7 - 1.05*b2*beta) * math.Pow(sin, 1.6)
	s.ChordSaddleOPB = opb * s.F3
	s.BraceSaddleOPB = math.Pow(tau, -0.54) * math.Pow(gamma, -0.05) * (0.99 - 0.47*beta + 0.08*b2*b2) * opb * s.F3
	return s, nil
}
