package wheel

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestTargetRotationLandsOnWedgeCenter(t *testing.T) {
	for n := 1; n <= 24; n++ {
		for i := 0; i < n; i++ {
			got, err := TargetRotation(n, i, 0, 0)
			if err != nil {
				t.Fatalf("n=%d i=%d: %v", n, i, err)
			}

			want := math.Mod(360-(float64(i)*360/float64(n)+180/float64(n)), 360)
			if !near(math.Mod(got, 360), want) {
				t.Fatalf("n=%d i=%d: got %v mod 360 = %v, want %v", n, i, got, math.Mod(got, 360), want)
			}
		}
	}
}

func TestTargetRotationNeverGoesBack(t *testing.T) {
	currents := []float64{0, 1, 134.9, 135, 135.1, 359.99, 360, 721.5, 10_000}
	for n := 1; n <= 12; n++ {
		for i := 0; i < n; i++ {
			align, _ := AlignAngle(n, i)
			for _, cur := range currents {
				for extra := 0; extra <= 9; extra++ {
					got, err := TargetRotation(n, i, cur, extra)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}
					if got < cur {
						t.Fatalf("n=%d i=%d cur=%v extra=%d: target %v < current", n, i, cur, extra, got)
					}
					if !near(math.Mod(got, 360), align) {
						t.Fatalf("n=%d i=%d cur=%v extra=%d: target %v not aligned to %v", n, i, cur, extra, got, align)
					}
				}
			}
		}
	}
}

func TestTargetRotationFourPrizes(t *testing.T) {
	// A, B, C, D - выбираем C (индекс 2)
	center, err := WedgeCenter(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if center != 225 {
		t.Fatalf("expected wedge center 225, got %v", center)
	}

	align, _ := AlignAngle(4, 2)
	if align != 135 {
		t.Fatalf("expected align 135, got %v", align)
	}

	got, _ := TargetRotation(4, 2, 0, 5)
	if got != 1935 {
		t.Fatalf("expected 1935, got %v", got)
	}
}

func TestTargetRotationKeepsAccumulatedTurns(t *testing.T) {
	// Колесо уже накрутило 3 полных оборота и ещё 100°
	got, _ := TargetRotation(4, 2, 3*360+100, 5)
	if got != 8*360+135 {
		t.Fatalf("expected %v, got %v", 8*360+135, got)
	}
}

func TestTargetRotationInvalidInput(t *testing.T) {
	cases := []struct{ n, i int }{{0, 0}, {-1, 0}, {4, 4}, {4, -1}}
	for _, c := range cases {
		if _, err := TargetRotation(c.n, c.i, 0, 5); !errors.Is(err, ErrInvalidIndex) {
			t.Fatalf("n=%d i=%d: expected ErrInvalidIndex, got %v", c.n, c.i, err)
		}
	}
}

func TestTargetRotationNegativeCurrentClamped(t *testing.T) {
	got, _ := TargetRotation(4, 0, -500, 0)
	if got != 315 {
		t.Fatalf("expected 315, got %v", got)
	}
}

func TestTargetRotationRejectsHugeCurrent(t *testing.T) {
	for _, cur := range []float64{MaxRotation + 1, 1e17, 1e300, math.MaxFloat64, math.Inf(1), math.NaN()} {
		if _, err := TargetRotation(4, 2, cur, 5); !errors.Is(err, ErrRotationOutOfRange) {
			t.Fatalf("current=%v: expected ErrRotationOutOfRange, got %v", cur, err)
		}
	}
}

func TestTargetRotationLandsOnWedgeAtMaxRotation(t *testing.T) {
	for _, n := range []int{4, 7, 8} {
		for i := 0; i < n; i++ {
			align, _ := AlignAngle(n, i)
			for _, cur := range []float64{MaxRotation - 0.5, MaxRotation} {
				got, err := TargetRotation(n, i, cur, 9)
				if err != nil {
					t.Fatalf("n=%d i=%d current=%v: %v", n, i, cur, err)
				}
				if got < cur {
					t.Fatalf("n=%d i=%d: target %v below current %v", n, i, got, cur)
				}
				if d := math.Mod(got, FullTurn) - align; math.Abs(d) > 1e-6 {
					t.Fatalf("n=%d i=%d current=%v: target mod 360 = %v, want %v", n, i, cur, math.Mod(got, FullTurn), align)
				}
			}
		}
	}
}
