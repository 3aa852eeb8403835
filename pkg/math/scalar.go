package math

import "math"

// Pi as float32.
const Pi = float32(math.Pi)

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates from a toward b by t.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// SafeDiv returns num/den, substituting den = 1 when |den| is below eps.
func SafeDiv(num, den, eps float32) float32 {
	if Abs(den) < eps {
		return num
	}
	return num / den
}

// Smoothstep is the cubic Hermite step between edge0 and edge1.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// DampFactor returns the blend factor 1 - e^(-rate*dt) used for framerate
// independent exponential smoothing.
func DampFactor(rate, dt float32) float32 {
	if dt <= 0 || rate <= 0 {
		return 0
	}
	return 1 - float32(math.Exp(float64(-rate*dt)))
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Sin returns sin(x).
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos returns cos(x).
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Atan2 returns atan2(y, x).
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Pow returns x**y.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
