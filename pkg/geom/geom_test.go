package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/evvaletov/stepfg/pkg/geom"
)

const tol = 1e-12

func vecEq(a, b geom.Vec3) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestVecArithmetic(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 2, Z: 3}
	b := geom.Vec3{X: 4, Y: -2, Z: 0.5}

	if got := a.Add(b); !vecEq(got, geom.Vec3{X: 5, Y: 0, Z: 3.5}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); !vecEq(got, geom.Vec3{X: 3, Y: -4, Z: -2.5}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(10); !vecEq(got, geom.Vec3{X: 10, Y: 20, Z: 30}) {
		t.Errorf("Scale = %v", got)
	}
	if got := geom.Midpoint(a, b); !vecEq(got, geom.Vec3{X: 2.5, Y: 0, Z: 1.75}) {
		t.Errorf("Midpoint = %v", got)
	}
	if got := geom.Vec3{X: 3, Y: 4, Z: 0}.Length(); math.Abs(got-5) > tol {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestCross(t *testing.T) {
	x := geom.Vec3{X: 1}
	y := geom.Vec3{Y: 1}
	z := geom.Vec3{Z: 1}

	if got := geom.Cross(x, y); !vecEq(got, z) {
		t.Errorf("x × y = %v, want %v", got, z)
	}
	if got := geom.Cross(y, x); !vecEq(got, z.Scale(-1)) {
		t.Errorf("y × x = %v, want %v", got, z.Scale(-1))
	}
	if got := geom.Cross(y, z); !vecEq(got, x) {
		t.Errorf("y × z = %v, want %v", got, x)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      geom.Vec3
		want    geom.Vec3
		wantErr bool
	}{
		{"unit x", geom.Vec3{X: 2}, geom.Vec3{X: 1}, false},
		{"negative z", geom.Vec3{Z: -0.5}, geom.Vec3{Z: -1}, false},
		{"diagonal", geom.Vec3{X: 3, Y: 4}, geom.Vec3{X: 0.6, Y: 0.8}, false},
		{"zero", geom.Vec3{}, geom.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := geom.Normalize(tt.in)
			if tt.wantErr {
				var dve *geom.DegenerateVectorError
				if !errors.As(err, &dve) {
					t.Fatalf("expected DegenerateVectorError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize failed: %v", err)
			}
			if !vecEq(got, tt.want) {
				t.Errorf("Normalize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClockwise(t *testing.T) {
	ccwSquare := []geom.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	cwSquare := []geom.Vec3{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	t.Run("counter-clockwise reversed", func(t *testing.T) {
		got, err := geom.Clockwise(ccwSquare)
		if err != nil {
			t.Fatalf("Clockwise failed: %v", err)
		}
		want := []geom.Vec3{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
		for i := range want {
			if !vecEq(got[i], want[i]) {
				t.Fatalf("vertex %d = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("clockwise unchanged", func(t *testing.T) {
		got, err := geom.Clockwise(cwSquare)
		if err != nil {
			t.Fatalf("Clockwise failed: %v", err)
		}
		for i := range cwSquare {
			if !vecEq(got[i], cwSquare[i]) {
				t.Fatalf("vertex %d = %v, want %v", i, got[i], cwSquare[i])
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := geom.Clockwise(ccwSquare)
		if err != nil {
			t.Fatalf("first pass: %v", err)
		}
		twice, err := geom.Clockwise(once)
		if err != nil {
			t.Fatalf("second pass: %v", err)
		}
		for i := range once {
			if !vecEq(once[i], twice[i]) {
				t.Fatalf("vertex %d changed on second pass: %v vs %v", i, once[i], twice[i])
			}
		}
	})

	t.Run("z carried through", func(t *testing.T) {
		ring := []geom.Vec3{{X: 0, Y: 0, Z: 7}, {X: 1, Y: 0, Z: 7}, {X: 0, Y: 1, Z: 7}}
		got, err := geom.Clockwise(ring)
		if err != nil {
			t.Fatalf("Clockwise failed: %v", err)
		}
		for i, v := range got {
			if v.Z != 7 {
				t.Fatalf("vertex %d lost z: %v", i, v)
			}
		}
	})

	t.Run("collinear degenerate", func(t *testing.T) {
		_, err := geom.Clockwise([]geom.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}})
		var dpe *geom.DegeneratePolygonError
		if !errors.As(err, &dpe) {
			t.Fatalf("expected DegeneratePolygonError, got %v", err)
		}
	})

	t.Run("reversal preserved input", func(t *testing.T) {
		in := []geom.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
		if _, err := geom.Clockwise(in); err != nil {
			t.Fatalf("Clockwise failed: %v", err)
		}
		if !vecEq(in[0], geom.Vec3{X: 0, Y: 0}) || !vecEq(in[3], geom.Vec3{X: 0, Y: 1}) {
			t.Fatal("input ring mutated by Clockwise")
		}
	})
}
