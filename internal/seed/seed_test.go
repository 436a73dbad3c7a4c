package seed

import "testing"

func TestHash32KnownValues(t *testing.T) {
	// FNV-1a offset basis for the empty string.
	if got := Hash32(""); got != 0x811c9dc5 {
		t.Fatalf("Hash32(\"\")=%#x, want 0x811c9dc5", got)
	}
	if Hash32("main_user") == Hash32("main_userx") {
		t.Fatalf("expected distinct hashes for distinct inputs")
	}
	if Hash32("abc") != Hash32("abc") {
		t.Fatalf("expected stable hash for a fixed input")
	}
}

func TestShortHash(t *testing.T) {
	h := ShortHash("companion-seed", 10)
	if len(h) != 10 {
		t.Fatalf("len=%d, want 10", len(h))
	}
	for _, r := range h {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			t.Fatalf("non-hex rune %q in %q", r, h)
		}
	}
	if ShortHash("x", 100) != ShortHash("x", 64) {
		t.Fatalf("over-long prefix should cap at the full digest")
	}
}

func TestMulberry32Deterministic(t *testing.T) {
	a := Mulberry32(12345)
	b := Mulberry32(12345)
	for i := 0; i < 64; i++ {
		va, vb := a(), b()
		if va != vb {
			t.Fatalf("draw %d diverged: %v vs %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, va)
		}
	}
}

func TestFromStringMatchesHashSeed(t *testing.T) {
	a := FromString("quiz:main_user:1")
	b := Mulberry32(Hash32("quiz:main_user:1"))
	for i := 0; i < 16; i++ {
		if a() != b() {
			t.Fatalf("FromString stream diverged at draw %d", i)
		}
	}
}

func TestRandRange(t *testing.T) {
	rng := FromString("range")
	for i := 0; i < 32; i++ {
		v := RandRange(rng, 0.85, 1.2)
		if v < 0.85 || v >= 1.2 {
			t.Fatalf("value %v out of [0.85, 1.2)", v)
		}
	}
}

func TestPickOne(t *testing.T) {
	list := []string{"a", "b", "c", "d"}
	rng1 := FromString("pick")
	rng2 := FromString("pick")
	for i := 0; i < 20; i++ {
		p1 := PickOne(rng1, list)
		p2 := PickOne(rng2, list)
		if p1 != p2 {
			t.Fatalf("pick %d diverged: %q vs %q", i, p1, p2)
		}
	}
	one := []int{7}
	rng3 := FromString("single")
	for i := 0; i < 5; i++ {
		if got := PickOne(rng3, one); got != 7 {
			t.Fatalf("single-element pick=%d, want 7", got)
		}
	}
}
