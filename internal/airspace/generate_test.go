package airspace

import (
	"testing"

	"github.com/banshee-data/airspace.report/internal/testutil"
)

func TestGenerate_WithinBounds(t *testing.T) {
	points, err := Generate(1000, 128, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertCount(t, "generated points", len(points), 1000)

	bounds := NewBounds(128)
	for _, p := range points {
		if !bounds.Contains(p.X, p.Y) {
			t.Fatalf("point %d at (%v, %v) outside [0, 128)", p.ID, p.X, p.Y)
		}
	}
}

func TestGenerate_DeterministicPerSeed(t *testing.T) {
	first, err := Generate(100, 128, 42)
	testutil.AssertNoError(t, err)
	second, err := Generate(100, 128, 42)
	testutil.AssertNoError(t, err)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d differs between identically seeded runs: %v vs %v", i, first[i], second[i])
		}
	}

	other, err := Generate(100, 128, 43)
	testutil.AssertNoError(t, err)
	same := true
	for i := range first {
		if first[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical point sets")
	}
}

func TestGenerate_InvalidParams(t *testing.T) {
	_, err := Generate(-1, 128, 1)
	testutil.AssertErrorIs(t, err, ErrInvalidParameter)

	_, err = Generate(10, 0, 1)
	testutil.AssertErrorIs(t, err, ErrInvalidParameter)
}

func TestGenerate_ZeroPoints(t *testing.T) {
	points, err := Generate(0, 128, 1)
	testutil.AssertNoError(t, err)
	testutil.AssertCount(t, "points", len(points), 0)
}

func TestFromCoordinates(t *testing.T) {
	points := FromCoordinates([][2]float64{{1, 2}, {3, 4}})
	want := []Point{{ID: 0, X: 1, Y: 2}, {ID: 1, X: 3, Y: 4}}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("points = %v, want %v", points, want)
		}
	}
}

func TestBounds_Contains(t *testing.T) {
	b := NewBounds(128)
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{127.999, 127.999, true},
		{128, 0, false},
		{0, 128, false},
		{-0.001, 5, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
