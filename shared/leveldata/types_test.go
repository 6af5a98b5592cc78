package leveldata

import (
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func TestGuidePathCentered(t *testing.T) {
	p := GuidePath{Name: "box", Points: []math.Vec2{
		{X: 100, Y: 50}, {X: 300, Y: 50}, {X: 300, Y: 150},
	}}

	got := p.Centered()
	want := []math.Vec2{{X: -100, Y: -50}, {X: 100, Y: -50}, {X: 100, Y: 50}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if p.Points[0].X != 100 {
		t.Errorf("Expected the original points to be left alone")
	}

	if (GuidePath{}).Centered() != nil {
		t.Errorf("Expected nil for an empty path")
	}
}
