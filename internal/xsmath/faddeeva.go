package xsmath

import "math/cmplx"

// SpecialFunctions is the Faddeeva-function capability MultipoleEval and
// MultipoleDerivEval consume (spec §6). It is modeled as an interface,
// not a bare function, so that a higher-precision or vendored
// implementation can be substituted without touching the evaluators —
// the same swap-a-strategy shape the teacher uses for
// internal/evo.Selector.
type SpecialFunctions interface {
	// Faddeeva returns w(z) = exp(-z^2) * erfc(-iz).
	Faddeeva(z complex128) complex128
	// FaddeevaSecondDerivative returns w''(z).
	FaddeevaSecondDerivative(z complex128) complex128
}

// DefaultSpecialFunctions evaluates the Faddeeva function with Humlicek's
// rational-approximation algorithm (J. Humlicek, JQSRT 27 (1982) 437), a
// standard compact approximation used throughout computational spectroscopy
// and resonance-physics codes. No third-party Go implementation of the
// Faddeeva function was found anywhere in the retrieved example pack, so
// this is built directly on math/cmplx, the same way the teacher hand-builds
// its own activation-function derivatives in internal/nn/derivatives.go.
//
// The second derivative is obtained analytically from the Faddeeva
// function's defining ODE, w'(z) = 2i/sqrt(pi) - 2*z*w(z), rather than by
// finite differencing: w''(z) = (4*z^2 - 2)*w(z) - 4i*z/sqrt(pi).
type DefaultSpecialFunctions struct{}

const sqrtPi = 1.7724538509055159

func (DefaultSpecialFunctions) Faddeeva(z complex128) complex128 {
	return humlicekW4(z)
}

func (DefaultSpecialFunctions) FaddeevaSecondDerivative(z complex128) complex128 {
	w := humlicekW4(z)
	return (4*z*z - 2) * w - complex(0, 4)*z/sqrtPi
}

// humlicekW4 implements Humlicek's region-based rational approximation to
// w(z) for z in the upper half-plane (Im(z) >= 0). A z in the lower
// half-plane, which the multipole kernel produces for poles with a
// positive imaginary part, is mapped there by reflection.
func humlicekW4(z complex128) complex128 {
	x, y := real(z), imag(z)
	if y < 0 {
		// w(z) = 2*exp(-z^2) - w(-z), with -z in the upper half-plane.
		return 2*cmplx.Exp(-z*z) - humlicekW4(complex(-x, -y))
	}

	s := x*x + y*y
	switch {
	case (y >= 15) || (s >= 155*155):
		// Region I: far from the real axis, two-term asymptotic expansion.
		return region1(x, y)
	case s >= 36*36:
		return region2(x, y)
	case y >= 0.085264 && s >= 2.5*2.5 || (y < 0.085264 && s >= 12*12):
		return region3(x, y)
	default:
		return region4(x, y)
	}
}

func region1(x, y float64) complex128 {
	t := complex(y, -x)
	return t * 0.5641896 / (0.5 + t*t)
}

func region2(x, y float64) complex128 {
	t := complex(y, -x)
	u := t * t
	return t * (1.410474 + u*0.5641896) / (0.75 + u*(3.0+u))
}

func region3(x, y float64) complex128 {
	t := complex(y, -x)
	return (16.4955 + t*(20.20933+t*(11.96482+t*(3.778987+t*0.5642236)))) /
		(16.4955 + t*(38.82363+t*(39.27121+t*(21.69274+t*(6.699398+t)))))
}

func region4(x, y float64) complex128 {
	t := complex(y, -x)
	u := t * t
	num := t * (36183.31 - u*(3321.9905-u*(1540.787-u*(219.0313-u*(35.76683-u*(1.320522-u*0.56419))))))
	den := 32066.6 - u*(24322.84-u*(9022.228-u*(2186.181-u*(364.2191-u*(61.57037-u*(1.841439-u))))))
	return cmplx.Exp(u) - num/den
}
