package input

import "testing"

func TestLatchAndShift(t *testing.T) {
	g := New()
	g.ButtonDown(ButtonA)
	g.Write(1)

	want := []uint8{1, 0, 0, 0, 0, 0, 0, 0} // A shifts out first
	for i, w := range want {
		if got := g.Read(); got != w {
			t.Errorf("read %d = %d, want %d", i, got, w)
		}
	}
}

func TestButtonOrder(t *testing.T) {
	g := New()
	g.ButtonDown(ButtonB)
	g.ButtonDown(ButtonStart)
	g.ButtonDown(ButtonRight)
	g.Write(1)

	// Serial order: A, B, Select, Start, Up, Down, Left, Right.
	want := []uint8{0, 1, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		if got := g.Read(); got != w {
			t.Errorf("read %d = %d, want %d", i, got, w)
		}
	}
}

func TestReleaseClearsBit(t *testing.T) {
	g := New()
	g.ButtonDown(ButtonA)
	g.ButtonUp(ButtonA)
	g.Write(1)
	if got := g.Read(); got != 0 {
		t.Errorf("released button read = %d, want 0", got)
	}
}

func TestPressAfterLatchInvisibleUntilRestrobe(t *testing.T) {
	g := New()
	g.Write(1)
	g.ButtonDown(ButtonA)
	if got := g.Read(); got != 0 {
		t.Errorf("pre-latch snapshot read = %d, want 0", got)
	}

	g.Write(1)
	if got := g.Read(); got != 1 {
		t.Errorf("post-strobe read = %d, want 1", got)
	}
}

func TestExhaustedLatchReadsZero(t *testing.T) {
	g := New()
	g.ButtonDown(ButtonRight)
	g.Write(1)
	for i := 0; i < 8; i++ {
		g.Read()
	}
	if got := g.Read(); got != 0 {
		t.Errorf("ninth read = %d, want 0", got)
	}
}
