package core

import (
	"errors"
	"testing"
)

func TestNewGridInvalidDimension(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}, {0, 0}}
	for _, c := range cases {
		g, err := NewGrid(c[0], c[1])
		if g != nil || err == nil {
			t.Fatalf("NewGrid(%d,%d) = %v, %v, expected nil grid and error", c[0], c[1], g, err)
		}
		if !errors.Is(err, ErrInvalidDimension) {
			t.Fatalf("NewGrid(%d,%d) error %v is not ErrInvalidDimension", c[0], c[1], err)
		}
	}
}

func TestSetOutOfRange(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	cases := [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 3}, {100, 100}}
	for _, c := range cases {
		if err := g.Set(c[0], c[1], true); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Set(%d,%d) error %v is not ErrOutOfRange", c[0], c[1], err)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("out-of-range Set mutated the grid, population %d", g.Population())
	}
	if err := g.Set(3, 2, true); err != nil {
		t.Fatalf("in-range Set failed: %v", err)
	}
	if !g.Get(3, 2) {
		t.Fatal("Set(3,2,true) not visible through Get")
	}
}

func TestBoundedBorder(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {8, 8}} {
		g, err := NewGrid(size[0], size[1])
		if err != nil {
			t.Fatal(err)
		}
		// Fill everything alive so any wrap-around would be visible.
		for i := range g.Cells() {
			g.Cells()[i] = true
		}
		outside := [][2]int{
			{-1, 0}, {0, -1}, {-1, -1},
			{size[0], 0}, {0, size[1]}, {size[0], size[1]},
			{-100, 2}, {2, 1000},
		}
		for _, c := range outside {
			if g.Get(c[0], c[1]) {
				t.Fatalf("%dx%d grid: Get(%d,%d) outside bounds reported alive", size[0], size[1], c[0], c[1])
			}
		}
	}
}

func TestBlankAndCloneIndependence(t *testing.T) {
	g, err := NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Set(1, 2, true); err != nil {
		t.Fatal(err)
	}

	blank := g.Blank()
	if blank.Width() != 4 || blank.Height() != 4 {
		t.Fatalf("Blank dimensions %dx%d, expected 4x4", blank.Width(), blank.Height())
	}
	if blank.Population() != 0 {
		t.Fatal("Blank grid is not all dead")
	}

	snap := g.Clone()
	if !snap.Get(1, 2) {
		t.Fatal("Clone did not copy cell values")
	}
	if err := g.Set(1, 2, false); err != nil {
		t.Fatal(err)
	}
	if !snap.Get(1, 2) {
		t.Fatal("mutating the original leaked into the clone")
	}
}

func TestSeedRandom(t *testing.T) {
	g, err := NewGrid(16, 16)
	if err != nil {
		t.Fatal(err)
	}

	g.SeedRandom(NewRNG(7).Source(), 0)
	if g.Population() != 0 {
		t.Fatalf("probability 0 produced %d alive cells", g.Population())
	}

	g.SeedRandom(NewRNG(7).Source(), 1)
	if g.Population() != 16*16 {
		t.Fatalf("probability 1 produced %d alive cells, expected %d", g.Population(), 16*16)
	}

	g.SeedRandom(NewRNG(7).Source(), 0.5)
	again := g.Blank()
	again.SeedRandom(NewRNG(7).Source(), 0.5)
	for i := range g.Cells() {
		if g.Cells()[i] != again.Cells()[i] {
			t.Fatal("same seed produced different fills")
		}
	}
}
