package geom

import "testing"

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Rect
	}{
		{"ordered", Pt(1, 2), Pt(5, 7), Rct(1, 2, 4, 5)},
		{"swapped", Pt(5, 7), Pt(1, 2), Rct(1, 2, 4, 5)},
		{"coincident", Pt(3, 3), Pt(3, 3), Rct(3, 3, 0, 0)},
		{"horizontal line", Pt(-2, 4), Pt(6, 4), Rct(-2, 4, 8, 0)},
		{"vertical line", Pt(0, -5), Pt(0, 5), Rct(0, -5, 0, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectFromPoints(tt.p1, tt.p2); got != tt.want {
				t.Errorf("RectFromPoints(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestUnionContainsBoth(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlapping", Rct(0, 0, 4, 4), Rct(2, 2, 4, 4), Rct(0, 0, 6, 6)},
		{"disjoint", Rct(-3, -3, 2, 2), Rct(5, 5, 1, 1), Rct(-3, -3, 9, 9)},
		{"contained", Rct(0, 0, 10, 10), Rct(2, 2, 3, 3), Rct(0, 0, 10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Union(tt.b)
			if got != tt.want {
				t.Fatalf("Union = %v, want %v", got, tt.want)
			}
			for _, r := range []Rect{tt.a, tt.b} {
				if r.X < got.X || r.Y < got.Y ||
					r.X+r.W > got.X+got.W || r.Y+r.H > got.Y+got.H {
					t.Errorf("union %v does not contain %v", got, r)
				}
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	a := Rct(0, 0, 10, 10)
	b := Rct(4, 6, 10, 10)
	want := Rct(4, 6, 6, 4)
	if got := a.Intersect(b); got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
	// Commutative on overlapping inputs.
	if got := b.Intersect(a); got != want {
		t.Errorf("Intersect (swapped) = %v, want %v", got, want)
	}
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := Rct(0, 0, 3, 3)
	b := Rct(10, 10, 3, 3)
	got := a.Intersect(b)
	if !got.Empty() {
		t.Errorf("Intersect of disjoint rects = %v, want empty", got)
	}
	if got.W < 0 || got.H < 0 {
		t.Errorf("Intersect produced negative extents: %v", got)
	}
}

func TestClipWithin(t *testing.T) {
	tests := []struct {
		name       string
		r          Rect
		w, h       int
		want       Rect
		wantOffset Point
	}{
		{"fully inside", Rct(2, 3, 5, 5), 20, 20, Rct(2, 3, 5, 5), Pt(0, 0)},
		{"negative origin", Rct(-2, -3, 10, 10), 20, 20, Rct(0, 0, 8, 7), Pt(2, 3)},
		{"past far edge", Rct(15, 18, 10, 10), 20, 20, Rct(15, 18, 5, 2), Pt(0, 0)},
		{"fully outside", Rct(-10, -10, 5, 5), 20, 20, Rct(0, 0, 0, 0), Pt(10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, offset := tt.r.ClipWithin(tt.w, tt.h)
			if got != tt.want {
				t.Errorf("ClipWithin rect = %v, want %v", got, tt.want)
			}
			if offset != tt.wantOffset {
				t.Errorf("ClipWithin offset = %v, want %v", offset, tt.wantOffset)
			}
		})
	}
}
