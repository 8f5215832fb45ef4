package indicator

import "testing"

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestResample_Unchanged(t *testing.T) {
	in := ints(5)
	out := Resample(in, 10)
	if len(out) != 5 {
		t.Fatalf("series that fits must come back unchanged, got %d points", len(out))
	}
	out = Resample(in, 0)
	if len(out) != 5 {
		t.Fatalf("non-positive cap must disable resampling, got %d points", len(out))
	}
}

func TestResample_StepAligned(t *testing.T) {
	// len 10, cap 4 → step 3 → indices 0,3,6,9; 9 is step aligned already.
	out := Resample(ints(10), 4)
	want := []int{0, 3, 6, 9}
	if len(out) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(out))
	}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("index %d: expected %d, got %d", i, w, out[i])
		}
	}
}

func TestResample_KeepsFinalPoint(t *testing.T) {
	// len 10, cap 3 → step 4 → indices 0,4,8 plus the final index 9.
	out := Resample(ints(10), 3)
	want := []int{0, 4, 8, 9}
	if len(out) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(out))
	}
	if out[len(out)-1] != 9 {
		t.Errorf("final point must always survive, got %d", out[len(out)-1])
	}
	for i, w := range want {
		if out[i] != w {
			t.Errorf("index %d: expected %d, got %d", i, w, out[i])
		}
	}
}
