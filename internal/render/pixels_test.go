package render

import "testing"

func TestFillRGBA(t *testing.T) {
	cells := []bool{true, false, true}
	buf := make([]byte, 4*len(cells))
	fillRGBA(buf, cells, DefaultAlive, DefaultDead)

	wantAlive := [4]byte{0x00, 0xff, 0xff, 0xff}
	wantDead := [4]byte{0xff, 0xff, 0xff, 0xff}
	for i, alive := range cells {
		want := wantDead
		if alive {
			want = wantAlive
		}
		for c := 0; c < 4; c++ {
			if buf[i*4+c] != want[c] {
				t.Fatalf("pixel %d channel %d = %#x, expected %#x", i, c, buf[i*4+c], want[c])
			}
		}
	}
}

func TestFillRGBAOpaque(t *testing.T) {
	cells := make([]bool, 8)
	cells[3] = true
	buf := make([]byte, 4*len(cells))
	fillRGBA(buf, cells, DefaultAlive, DefaultDead)
	for i := range cells {
		if buf[i*4+3] != 0xff {
			t.Fatalf("pixel %d alpha %#x, expected full opacity", i, buf[i*4+3])
		}
	}
}
