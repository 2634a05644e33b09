package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vector = mgl64.Vec3

// FlatDistance is the distance between a and b ignoring the vertical axis.
func FlatDistance(a, b Vector) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

func flat(v Vector) Vector {
	return Vector{v.X(), 0, v.Z()}
}

// normalize returns the unit vector of v, or the zero vector when v has no length.
func normalize(v Vector) Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return v.Mul(1 / l)
}

// leftOf rotates forward a quarter turn in the XZ-plane, towards the camera's left.
func leftOf(forward Vector) Vector {
	return Vector{forward.Z(), 0, -forward.X()}
}

func rightOf(forward Vector) Vector {
	return leftOf(forward).Mul(-1)
}

func outOfBounds(p Vector) bool {
	return math.Abs(p.X()) > WorldBound || math.Abs(p.Z()) > WorldBound
}
