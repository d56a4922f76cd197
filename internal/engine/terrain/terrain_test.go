package terrain

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		w, d    int
		spacing float32
		wantErr bool
	}{
		{"valid", 4, 4, 1.0, false},
		{"minimum grid", 2, 2, 0.5, false},
		{"width too small", 1, 4, 1.0, true},
		{"depth too small", 4, 0, 1.0, true},
		{"zero spacing", 4, 4, 0, true},
		{"negative spacing", 4, 4, -1.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.w, tt.d, tt.spacing)
			if (err != nil) != tt.wantErr {
				t.Errorf("New(%d, %d, %v) error = %v, wantErr %v", tt.w, tt.d, tt.spacing, err, tt.wantErr)
			}
		})
	}
}

func TestGridCentered(t *testing.T) {
	tr, err := New(5, 9, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if tr.MinX() != -4.0 || tr.MaxX() != 4.0 {
		t.Errorf("X bounds = [%v, %v], want [-4, 4]", tr.MinX(), tr.MaxX())
	}
	if tr.MinZ() != -8.0 || tr.MaxZ() != 8.0 {
		t.Errorf("Z bounds = [%v, %v], want [-8, 8]", tr.MinZ(), tr.MaxZ())
	}
}

func TestGetHeightExactAtGridVertices(t *testing.T) {
	tr, err := New(8, 8, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	tr.Build(0.1, 3.0, 42)

	for iz := 0; iz < 8; iz++ {
		for ix := 0; ix < 8; ix++ {
			wx := tr.MinX() + float32(ix)*1.5
			wz := tr.MinZ() + float32(iz)*1.5
			got := tr.GetHeight(wx, wz)
			want := tr.heights[ix+iz*8]
			if got != want {
				t.Errorf("GetHeight at vertex (%d,%d) = %v, want cached %v", ix, iz, got, want)
			}
		}
	}
}

func TestGetHeightExactOnBoundaryRows(t *testing.T) {
	// Vertices on the max row and column land in the clamped edge cell
	// with an interpolation parameter of 1, so they only reproduce the
	// cached heights if the blend is exact at its endpoints.
	grids := []struct {
		w, d    int
		spacing float32
	}{
		{8, 8, 1.5},
		{9, 13, 0.25},
		{320, 5, 0.5},
	}
	for _, g := range grids {
		tr, err := New(g.w, g.d, g.spacing)
		if err != nil {
			t.Fatal(err)
		}
		tr.Build(0.08, 10.0, 1337)

		for ix := 0; ix < g.w; ix++ {
			wx := tr.MinX() + float32(ix)*g.spacing
			got := tr.GetHeight(wx, tr.MaxZ())
			want := tr.heights[ix+(g.d-1)*g.w]
			if got != want {
				t.Errorf("%dx%d: GetHeight at max-row vertex %d = %v, want cached %v", g.w, g.d, ix, got, want)
			}
		}
		for iz := 0; iz < g.d; iz++ {
			wz := tr.MinZ() + float32(iz)*g.spacing
			got := tr.GetHeight(tr.MaxX(), wz)
			want := tr.heights[(g.w-1)+iz*g.w]
			if got != want {
				t.Errorf("%dx%d: GetHeight at max-column vertex %d = %v, want cached %v", g.w, g.d, iz, got, want)
			}
		}
	}
}

func TestGetHeightContinuity(t *testing.T) {
	tr, err := New(16, 16, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	tr.Build(0.2, 5.0, 7)

	// Max slope between samples step apart is bounded by the steepest cell.
	const step = 0.01
	prev := tr.GetHeight(tr.MinX(), 0.3)
	for x := tr.MinX() + step; x < tr.MaxX(); x += step {
		cur := tr.GetHeight(x, 0.3)
		if jump := math.Abs(float64(cur - prev)); jump > 1.0 {
			t.Fatalf("height discontinuity at x=%v: jump %v", x, jump)
		}
		prev = cur
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, _ := New(32, 32, 0.5)
	b, _ := New(32, 32, 0.5)
	a.Build(0.08, 10.0, 1337)
	b.Build(0.08, 10.0, 1337)

	for i := range a.heights {
		if a.heights[i] != b.heights[i] {
			t.Fatalf("heights differ at index %d: %v != %v", i, a.heights[i], b.heights[i])
		}
	}
}

func TestRebuildOverwrites(t *testing.T) {
	tr, _ := New(16, 16, 1.0)
	tr.Build(0.1, 5.0, 1)
	first := append([]float32(nil), tr.heights...)

	tr.Build(0.1, 5.0, 2)
	tr.Build(0.1, 5.0, 1)

	for i := range first {
		if tr.heights[i] != first[i] {
			t.Fatalf("rebuild with original seed not bit-identical at %d", i)
		}
	}
}

func TestGetHeightClampsOutsideBounds(t *testing.T) {
	tr, _ := New(8, 8, 1.0)
	tr.Build(0.3, 2.0, 11)

	corner := tr.GetHeight(tr.MaxX(), tr.MaxZ())
	beyond := tr.GetHeight(tr.MaxX()+100, tr.MaxZ()+100)
	if corner != beyond {
		t.Errorf("query beyond bounds = %v, want corner value %v", beyond, corner)
	}
}

func TestGetNormalFlatFallback(t *testing.T) {
	tr, _ := New(8, 8, 1.0)
	tr.Build(0.1, 0.0, 5) // zero height scale: perfectly flat field

	points := [][2]float32{{0, 0}, {1.3, -2.1}, {tr.MinX(), tr.MinZ()}, {3.9, 3.9}}
	for _, p := range points {
		n := tr.GetNormal(p[0], p[1])
		if n != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("GetNormal(%v, %v) on flat terrain = %v, want (0,1,0)", p[0], p[1], n)
		}
	}
}

func TestGetNormalUnitLength(t *testing.T) {
	tr, _ := New(32, 32, 0.5)
	tr.Build(0.15, 8.0, 99)

	for i := 0; i < 50; i++ {
		x := tr.MinX() + float32(i)*0.3
		z := tr.MinZ() + float32(i)*0.29
		n := tr.GetNormal(x, z)
		if l := n.Len(); math.Abs(float64(l)-1.0) > 1e-4 {
			t.Errorf("GetNormal(%v, %v) length = %v, want 1", x, z, l)
		}
	}
}
