package easel

import "math"

// Vector is a 2D value with a dual polar/cartesian representation. The polar
// form (angle, length) is canonical, so mutating Angle preserves Length and
// vice versa — including through a zero-length state, where a plain (x, y)
// pair would forget its direction.
//
// Angles are in degrees measured from the positive X axis; with Y growing
// downward a positive angle turns clockwise on screen.
type Vector struct {
	angle  float64 // degrees
	length float64
}

// NewVector builds a vector from cartesian components.
func NewVector(x, y float64) Vector {
	var v Vector
	v.setCartesian(x, y)
	return v
}

// NewPolarVector builds a vector from an angle in degrees and a length.
func NewPolarVector(angle, length float64) Vector {
	return Vector{angle: normalizeDeg(angle), length: length}
}

func (v *Vector) setCartesian(x, y float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		// Keep the previous direction so SetLength can revive the vector.
		v.length = 0
		return
	}
	v.length = length
	v.angle = normalizeDeg(math.Atan2(y, x) * 180 / math.Pi)
}

// X returns the horizontal component.
func (v Vector) X() float64 {
	return v.length * math.Cos(v.angle*math.Pi/180)
}

// Y returns the vertical component.
func (v Vector) Y() float64 {
	return v.length * math.Sin(v.angle*math.Pi/180)
}

// Angle returns the direction in degrees, normalized to [0, 360).
func (v Vector) Angle() float64 { return v.angle }

// Length returns the magnitude.
func (v Vector) Length() float64 { return v.length }

// SetX replaces the horizontal component, keeping Y.
func (v *Vector) SetX(x float64) { v.setCartesian(x, v.Y()) }

// SetY replaces the vertical component, keeping X.
func (v *Vector) SetY(y float64) { v.setCartesian(v.X(), y) }

// SetAngle rotates the vector to the given direction, preserving Length.
func (v *Vector) SetAngle(deg float64) { v.angle = normalizeDeg(deg) }

// SetLength rescales the vector, preserving Angle. Negative lengths flip the
// direction by 180 degrees.
func (v *Vector) SetLength(length float64) {
	if length < 0 {
		v.angle = normalizeDeg(v.angle + 180)
		length = -length
	}
	v.length = length
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return NewVector(v.X()+o.X(), v.Y()+o.Y())
}

// Scale returns v with its length multiplied by f.
func (v Vector) Scale(f float64) Vector {
	out := v
	out.SetLength(v.length * f)
	return out
}
