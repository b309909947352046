package stack

import "testing"

func TestStack_PushAndPop(t *testing.T) {
	t.Parallel()

	s := New[int]()
	s.Push(1)
	s.Push(2)

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if v, ok := s.Pop(); !ok || v != 2 {
		t.Fatalf("Pop = %d ok=%v, want 2", v, ok)
	}
	if v, ok := s.Pop(); !ok || v != 1 {
		t.Fatalf("Pop = %d ok=%v, want 1", v, ok)
	}
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on empty stack must report false")
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestStack_Peek(t *testing.T) {
	t.Parallel()

	var s Stack[string] // zero value is usable
	if _, ok := s.Peek(); ok {
		t.Fatal("Peek on empty stack must report false")
	}

	s.Push("a")
	s.Push("b")
	if v, ok := s.Peek(); !ok || v != "b" {
		t.Fatalf("Peek = %q ok=%v, want b", v, ok)
	}
	if s.Len() != 2 {
		t.Fatal("Peek must not remove the element")
	}
}

func TestStack_Each(t *testing.T) {
	t.Parallel()

	s := New[int]()
	for i := 1; i <= 3; i++ {
		s.Push(i)
	}

	var got []int
	s.Each(func(v int) { got = append(got, v) })

	want := []int{3, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Each visited %v, want %v", got, want)
		}
	}
}
