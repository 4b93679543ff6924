package mesh

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestResolveTransformFacing(t *testing.T) {
	tests := []struct {
		props []string
		yaw   float32
	}{
		{[]string{"facing=east"}, 0},
		{[]string{"facing=north"}, math.Pi / 2},
		{[]string{"facing=west"}, math.Pi},
		{[]string{"facing=south"}, -math.Pi / 2},
		{nil, 0},
		{[]string{"waterlogged=false"}, 0},
	}
	for _, tt := range tests {
		got := ResolveTransform(tt.props)
		if !almostEqual(got.Yaw, tt.yaw) {
			t.Errorf("ResolveTransform(%v).Yaw = %v, want %v", tt.props, got.Yaw, tt.yaw)
		}
	}
}

// An upside-down block rotates 180° and its facing angle flips sign:
// north contributes -π/2 instead of π/2, composing to π/2 total.
func TestResolveTransformUpsideDownFacing(t *testing.T) {
	got := ResolveTransform([]string{"facing=north", "half=top"})
	want := float32(math.Pi) + float32(-math.Pi/2)
	if !almostEqual(got.Yaw, want) {
		t.Errorf("Yaw = %v, want %v", got.Yaw, want)
	}

	// Property order must not matter.
	reversed := ResolveTransform([]string{"half=top", "facing=north"})
	if !almostEqual(reversed.Yaw, want) {
		t.Errorf("reversed Yaw = %v, want %v", reversed.Yaw, want)
	}
}

func TestResolveTransformSlabTop(t *testing.T) {
	got := ResolveTransform([]string{"type=top"})
	if !almostEqual(got.Offset[1], 0.5) {
		t.Errorf("Offset = %v, want +0.5 vertical", got.Offset)
	}
	if got.Yaw != 0 || got.Pitch != 0 || got.Roll != 0 {
		t.Errorf("type=top must not rotate, got %+v", got)
	}
}

func TestResolveTransformAxis(t *testing.T) {
	if got := ResolveTransform([]string{"axis=x"}); !almostEqual(got.Roll, math.Pi/2) {
		t.Errorf("axis=x Roll = %v, want π/2", got.Roll)
	}
	if got := ResolveTransform([]string{"axis=z"}); !almostEqual(got.Pitch, math.Pi/2) {
		t.Errorf("axis=z Pitch = %v, want π/2", got.Pitch)
	}
	if got := ResolveTransform([]string{"axis=y"}); !got.IsIdentity() {
		t.Errorf("axis=y = %+v, want identity", got)
	}
}

func TestHasRotation(t *testing.T) {
	tests := []struct {
		props []string
		want  bool
	}{
		{[]string{"facing=north"}, true},
		{[]string{"axis=y"}, true},
		{[]string{"half=bottom"}, true},
		{[]string{"type=bottom"}, true},
		{[]string{"waterlogged=true", "powered=false"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasRotation(tt.props); got != tt.want {
			t.Errorf("HasRotation(%v) = %v, want %v", tt.props, got, tt.want)
		}
	}
}
