package assimp

import (
	"testing"
	"unsafe"
)

func TestSpan(t *testing.T) {
	backing := [4]float32{1, 2, 3, 4}

	s := span[float32](unsafe.Pointer(&backing[0]), 4)
	if len(s) != 4 {
		t.Fatalf("len(s) = %d, want 4", len(s))
	}
	for i, v := range s {
		if v != backing[i] {
			t.Errorf("s[%d] = %v, want %v", i, v, backing[i])
		}
	}

	// The span views the backing array, it does not copy it.
	backing[2] = 42
	if s[2] != 42 {
		t.Errorf("s[2] = %v after write through backing, want 42", s[2])
	}
}

func TestSpanZeroCount(t *testing.T) {
	backing := [1]float32{1}

	if s := span[float32](unsafe.Pointer(&backing[0]), 0); s != nil {
		t.Errorf("span with count 0 = %v, want nil", s)
	}
	if s := span[float32](nil, 0); s != nil {
		t.Errorf("span with nil pointer and count 0 = %v, want nil", s)
	}
}

func TestRefSpan(t *testing.T) {
	a, b := 10, 20
	backing := [2]*int{&a, &b}

	s := refSpan[int](unsafe.Pointer(&backing[0]), 2)
	if len(s) != 2 {
		t.Fatalf("len(s) = %d, want 2", len(s))
	}
	if s[0] != &a || s[1] != &b {
		t.Errorf("refSpan elements do not alias the backing pointers")
	}

	if s := refSpan[int](nil, 0); s != nil {
		t.Errorf("refSpan with count 0 = %v, want nil", s)
	}
}
