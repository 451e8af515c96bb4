package src

import (
	"testing"
)

func TestDequeEnds(t *testing.T) {
	d := DequeCreate(4)
	if d == nil {
		t.Fatal("DequeCreate err: nil")
	}
	_ = d.PushBack(PutInt32(2))
	_ = d.PushFront(PutInt32(1))
	_ = d.PushBack(PutInt32(3))
	if d.Len() != 3 {
		t.Error("Push err: len == ", d.Len())
	}
	out := make([]byte, 4)
	if err := d.PeekFront(out); err != nil {
		t.Error("PeekFront err: ", err)
	}
	if Int32At(out) != 1 {
		t.Error("PeekFront err: v == ", Int32At(out))
	}
	if err := d.PeekBack(out); err != nil {
		t.Error("PeekBack err: ", err)
	}
	if Int32At(out) != 3 {
		t.Error("PeekBack err: v == ", Int32At(out))
	}
	if Int32At(d.PeekFrontRef()) != 1 || Int32At(d.PeekBackRef()) != 3 {
		t.Error("PeekRef err: views wrong")
	}
	if err := d.PopFront(out); err != nil {
		t.Error("PopFront err: ", err)
	}
	if Int32At(out) != 1 {
		t.Error("PopFront err: v == ", Int32At(out))
	}
	if err := d.PopBack(out); err != nil {
		t.Error("PopBack err: ", err)
	}
	if Int32At(out) != 3 {
		t.Error("PopBack err: v == ", Int32At(out))
	}
	if d.Len() != 1 {
		t.Error("Pop err: len == ", d.Len())
	}
	d.Destroy()
}

func TestDequeIndexed(t *testing.T) {
	d := DequeCreate(4)
	for _, x := range []int32{10, 30} {
		_ = d.PushBack(PutInt32(x))
	}
	if err := d.Insert(1, PutInt32(20)); err != nil {
		t.Error("Insert err: ", err)
	}
	out := make([]byte, 4)
	for i, w := range []int32{10, 20, 30} {
		if err := d.Get(i, out); err != nil {
			t.Error("Get err: ", err)
		}
		if Int32At(out) != w {
			t.Error("Get err: idx ", i, " v == ", Int32At(out))
		}
	}
	if err := d.Set(1, PutInt32(99)); err != nil {
		t.Error("Set err: ", err)
	}
	_ = d.Get(1, out)
	if Int32At(out) != 99 {
		t.Error("Set err: v == ", Int32At(out))
	}
	if err := d.Remove(1); err != nil {
		t.Error("Remove err: ", err)
	}
	if d.Len() != 2 {
		t.Error("Remove err: len == ", d.Len())
	}
	if err := d.Get(5, out); err != ERR_INDEX_OUT_OF_BOUNDS {
		t.Error("Get err: expected out of bounds, got ", err)
	}
	d.Destroy()
}

func TestDequeBoundary(t *testing.T) {
	d := DequeCreate(4)
	out := make([]byte, 4)
	if err := d.PopFront(out); err != ERR_EMPTY_CONTAINER {
		t.Error("PopFront err: expected empty container, got ", err)
	}
	if err := d.PopBack(out); err != ERR_EMPTY_CONTAINER {
		t.Error("PopBack err: expected empty container, got ", err)
	}
	if err := d.PeekFront(out); err != ERR_EMPTY_CONTAINER {
		t.Error("PeekFront err: expected empty container, got ", err)
	}
	if err := d.PeekBack(out); err != ERR_EMPTY_CONTAINER {
		t.Error("PeekBack err: expected empty container, got ", err)
	}
	if d.PeekFrontRef() != nil || d.PeekBackRef() != nil {
		t.Error("PeekRef err: expected nil when empty")
	}
	if d.Len() != 0 {
		t.Error("Pop err: size altered by failed pop")
	}
	d.Destroy()
}

// a deque drained front-to-back after mixed pushes matches the order a
// reference double-ended container would hold
func TestDequeMixedSequence(t *testing.T) {
	d := DequeCreate(4)
	ref := []int32{}
	for i := int32(0); i < 10; i++ {
		if i%2 == 0 {
			_ = d.PushBack(PutInt32(i))
			ref = append(ref, i)
		} else {
			_ = d.PushFront(PutInt32(i))
			ref = append([]int32{i}, ref...)
		}
	}
	out := make([]byte, 4)
	for _, w := range ref {
		if err := d.PopFront(out); err != nil {
			t.Error("PopFront err: ", err)
		}
		if Int32At(out) != w {
			t.Error("PopFront err: v == ", Int32At(out), " want ", w)
		}
	}
	d.Destroy()
}

func TestDequeDestroyIdempotent(t *testing.T) {
	d := DequeCreate(4)
	_ = d.PushBack(PutInt32(1))
	d.Destroy()
	d.Destroy()
	var nilD *Deque
	nilD.Destroy()
	if err := nilD.PushBack(PutInt32(1)); err != ERR_INVALID_INPUT {
		t.Error("PushBack err: expected invalid input, got ", err)
	}
}
