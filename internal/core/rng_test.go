package core

import "testing"

func TestRNGDeterminism(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRNGChanceExtremes(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) reported true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) reported false")
		}
	}
}
