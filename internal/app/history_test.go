package app

import "testing"

func TestRingPushAndValues(t *testing.T) {
	r := NewRing(4)

	if r.Len() != 0 || r.Values() != nil {
		t.Fatal("fresh ring not empty")
	}

	r.Push(1)
	r.Push(2)
	r.Push(3)

	got := r.Values()
	want := []float64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if r.Last() != 3 {
		t.Errorf("Last() = %v, want 3", r.Last())
	}
}

func TestRingWrapsChronologically(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		r.Push(float64(i))
	}

	got := r.Values()
	want := []float64{3, 4, 5}
	if len(got) != 3 {
		t.Fatalf("Len = %d after overflow, want 3", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values() = %v, want %v", got, want)
		}
	}
	if r.Last() != 5 {
		t.Errorf("Last() = %v, want 5", r.Last())
	}
}

func TestRingLastWhenEmpty(t *testing.T) {
	if NewRing(2).Last() != 0 {
		t.Error("Last() on empty ring should be 0")
	}
}
