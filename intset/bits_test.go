package intset

import "testing"

func TestSetUnsetHasBit(t *testing.T) {
	var w uint32
	w = setBit(5, w)
	if !hasBit(5, w) {
		t.Fatalf("expected bit 5 set")
	}
	w = unsetBit(5, w)
	if hasBit(5, w) {
		t.Fatalf("expected bit 5 cleared")
	}
}

func TestCountBits(t *testing.T) {
	var w uint32
	for _, b := range []int{0, 3, 7, 31} {
		w = setBit(b, w)
	}
	if got := countBits(w); got != 4 {
		t.Fatalf("countBits = %d, want 4", got)
	}
}

func TestMinMaxBit(t *testing.T) {
	if minBit(0) != -1 || maxBit(0) != -1 {
		t.Fatalf("minBit/maxBit of zero word must be -1")
	}
	var w uint32
	w = setBit(3, w)
	w = setBit(19, w)
	if minBit(w) != 3 {
		t.Fatalf("minBit = %d, want 3", minBit(w))
	}
	if maxBit(w) != 19 {
		t.Fatalf("maxBit = %d, want 19", maxBit(w))
	}
}

func TestInWordOffset(t *testing.T) {
	if inWord(37) != 1 || offset(37) != 5 {
		t.Fatalf("inWord/offset(37) = %d/%d, want 1/5", inWord(37), offset(37))
	}
}
