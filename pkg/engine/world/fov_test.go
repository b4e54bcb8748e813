package world

import (
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestVisibleFrom_Shapes(t *testing.T) {
	grid := NewGrid(7, 7)
	center := Pos(3, 3)

	tests := []struct {
		name string
		vis  Visibility
		want int
	}{
		{"square radius 1 is the 8-neighbourhood", Visibility{Shape: ShapeSquare, Radius: 1}, 9},
		{"square radius 2 is the 5x5 block", Visibility{Shape: ShapeSquare, Radius: 2}, 25},
		{"plus radius 1 is cardinal only", Visibility{Shape: ShapePlus, Radius: 1}, 5},
		{"plus radius 2", Visibility{Shape: ShapePlus, Radius: 2}, 9},
		{"diamond radius 2", Visibility{Shape: ShapeDiamond, Radius: 2}, 13},
		{"radius 0 is just the player", Visibility{Shape: ShapeSquare, Radius: 0}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleFrom(grid, center, tt.vis)
			if len(got) != tt.want {
				t.Errorf("len(VisibleFrom) = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestVisibleFrom_PlusExcludesDiagonals(t *testing.T) {
	grid := NewGrid(3, 3)
	set := VisibleSet(grid, Pos(1, 1), Visibility{Shape: ShapePlus, Radius: 1})
	for _, diag := range []Position{Pos(0, 0), Pos(0, 2), Pos(2, 0), Pos(2, 2)} {
		if set.Has(diag) {
			t.Errorf("plus shape includes diagonal %v", diag)
		}
	}
	for _, p := range []Position{Pos(1, 1), Pos(0, 1), Pos(2, 1), Pos(1, 0), Pos(1, 2)} {
		if !set.Has(p) {
			t.Errorf("plus shape missing %v", p)
		}
	}
}

func TestVisibleFrom_ClipsToGrid(t *testing.T) {
	grid := NewGrid(6, 6)
	got := VisibleFrom(grid, Pos(0, 0), Visibility{Shape: ShapeSquare, Radius: 1})
	if len(got) != 4 {
		t.Fatalf("corner square radius 1: got %d cells, want 4", len(got))
	}
	for _, p := range got {
		if !grid.Contains(p) {
			t.Errorf("VisibleFrom returned out-of-bounds %v", p)
		}
	}
}

func TestVisibleFrom_OutOfBoundsCenter(t *testing.T) {
	grid := NewGrid(2, 2)
	if got := VisibleFrom(grid, Pos(5, 5), Visibility{Radius: 1}); got != nil {
		t.Errorf("VisibleFrom(out of bounds) = %v, want nil", got)
	}
	if got := VisibleFrom(nil, Pos(0, 0), Visibility{Radius: 1}); got != nil {
		t.Errorf("VisibleFrom(nil grid) = %v, want nil", got)
	}
}

func TestReveal_Monotonic(t *testing.T) {
	grid := NewGrid(6, 6)
	vis := Visibility{Shape: ShapePlus, Radius: 1}
	revealed := mapset.New[Position]()

	path := []Position{Pos(0, 0), Pos(0, 1), Pos(1, 1), Pos(2, 1), Pos(2, 2), Pos(3, 2)}
	prev := mapset.New[Position]()
	for i, p := range path {
		Reveal(grid, revealed, p, vis)
		if !revealed.Has(p) {
			t.Fatalf("step %d: player cell %v not revealed", i, p)
		}
		prev.Each(func(q Position) {
			if !revealed.Has(q) {
				t.Errorf("step %d: %v was revealed before and is now hidden", i, q)
			}
		})
		prev = mapset.New[Position]()
		revealed.Each(func(q Position) { prev.Put(q) })
	}
}
