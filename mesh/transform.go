package mesh

import (
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform is the placement derived from a block's state properties: a
// position offset plus rotations about the three axes, in radians.
type Transform struct {
	Offset mgl32.Vec3
	Yaw    float32 // about the vertical axis
	Pitch  float32 // about the X axis
	Roll   float32 // about the Z axis
}

func (t Transform) IsIdentity() bool {
	return t.Offset == (mgl32.Vec3{}) && t.Yaw == 0 && t.Pitch == 0 && t.Roll == 0
}

// Rotation composes the three axis rotations into one matrix.
func (t Transform) Rotation() mgl32.Mat3 {
	return mgl32.Rotate3DY(t.Yaw).Mul3(mgl32.Rotate3DX(t.Pitch)).Mul3(mgl32.Rotate3DZ(t.Roll))
}

// Yaw per facing direction. Upside-down blocks flip the sign: a block's
// visual front inverts when half=top also rotates it 180°.
var facingYaw = map[string]float32{
	"east":  0,
	"north": math.Pi / 2,
	"west":  math.Pi,
	"south": -math.Pi / 2,
}

// ResolveTransform derives the placement from an ordered property list.
// The rules are independent and compose additively; absent properties
// are no-ops, unrecognized values too.
func ResolveTransform(properties []string) Transform {
	var t Transform

	top := false
	for _, prop := range properties {
		if k, v := splitProperty(prop); k == "half" && v == "top" {
			top = true
			t.Yaw += math.Pi
		}
	}

	for _, prop := range properties {
		key, value := splitProperty(prop)
		switch key {
		case "facing":
			if yaw, ok := facingYaw[value]; ok {
				if top {
					yaw = -yaw
				}
				t.Yaw += yaw
			}
		case "type":
			if value == "top" {
				t.Offset[1] += 0.5
			}
		case "axis":
			switch value {
			case "x":
				t.Roll += math.Pi / 2
			case "z":
				t.Pitch += math.Pi / 2
			}
		}
	}
	return t
}

func splitProperty(prop string) (key, value string) {
	if i := strings.IndexByte(prop, '='); i >= 0 {
		return prop[:i], prop[i+1:]
	}
	return prop, ""
}

// rotationProps are the state keys that orient a block's geometry.
// Groups carrying any of them cannot share one merged buffer.
var rotationProps = map[string]bool{
	"facing": true,
	"axis":   true,
	"half":   true,
	"type":   true,
}

// HasRotation reports whether any property key orients the geometry.
func HasRotation(properties []string) bool {
	for _, prop := range properties {
		key, _ := splitProperty(prop)
		if rotationProps[key] {
			return true
		}
	}
	return false
}
