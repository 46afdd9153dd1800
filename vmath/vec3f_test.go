package vmath

import (
	"math"
	"testing"
)

func TestV3FNormalize(t *testing.T) {
	n := V3FNormalize(Vec3F{X: 3, Y: 0, Z: 4})
	if math.Abs(V3FMag(n)-1) > 1e-9 {
		t.Errorf("Expected unit length, got %f", V3FMag(n))
	}
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Expected zero vector for zero input, got %+v", got)
	}
}

func TestClosestOnRay(t *testing.T) {
	tests := []struct {
		name  string
		p     Vec3F
		wantT float64
		want  Vec3F
	}{
		{"ahead", Vec3F{X: 1, Y: 0, Z: 5}, 5, Vec3F{Z: 5}},
		{"behind clamps to origin", Vec3F{X: 1, Y: 1, Z: -3}, 0, Vec3F{}},
		{"on ray", Vec3F{Z: 2}, 2, Vec3F{Z: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, gotT := ClosestOnRay(Vec3F{}, Vec3F{Z: 1}, tt.p)
			if gotT != tt.wantT {
				t.Errorf("t = %f, want %f", gotT, tt.wantT)
			}
			if got != tt.want {
				t.Errorf("point = %+v, want %+v", got, tt.want)
			}
		})
	}
}
