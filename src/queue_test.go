package src

import (
	"testing"
)

func TestQueueArrayCreate(t *testing.T) {
	q := QueueArrayCreate(4)
	if q == nil {
		t.Fatal("QueueArrayCreate err: nil")
	}
	if q.Len() != 0 || q.Cap() != QUEUE_INITIAL_CAPACITY {
		t.Error("QueueArrayCreate err: len == ", q.Len(), " cap == ", q.Cap())
	}
	if QueueArrayCreate(0) != nil {
		t.Error("QueueArrayCreate err: expected nil for element size 0")
	}
	q2 := QueueArrayCreateWithCap(4, 3)
	if q2.Cap() != 3 {
		t.Error("QueueArrayCreateWithCap err: cap == ", q2.Cap())
	}
	q.Destroy()
	q2.Destroy()
}

func TestQueueArrayFIFO(t *testing.T) {
	// small capacity so the enqueue run wraps and grows
	q := QueueArrayCreateWithCap(4, 3)
	for _, x := range []int32{1, 2, 3} {
		if err := q.Enqueue(PutInt32(x)); err != nil {
			t.Error("Enqueue err: ", err)
		}
	}
	out := make([]byte, 4)
	if err := q.Dequeue(out); err != nil {
		t.Error("Dequeue err: ", err)
	}
	if Int32At(out) != 1 {
		t.Error("Dequeue err: v == ", Int32At(out))
	}
	// 4 lands in the wrapped slot, 5 forces the two-segment resize
	_ = q.Enqueue(PutInt32(4))
	_ = q.Enqueue(PutInt32(5))
	for _, w := range []int32{2, 3, 4, 5} {
		if err := q.Dequeue(out); err != nil {
			t.Error("Dequeue err: ", err)
		}
		if Int32At(out) != w {
			t.Error("Dequeue err: v == ", Int32At(out), " want ", w)
		}
	}
	if q.Len() != 0 {
		t.Error("Dequeue err: len == ", q.Len())
	}
	if err := q.Dequeue(out); err != ERR_EMPTY_CONTAINER {
		t.Error("Dequeue err: expected empty container, got ", err)
	}
	q.Destroy()
}

func TestQueueArrayInvariant(t *testing.T) {
	q := QueueArrayCreateWithCap(4, 4)
	check := func() {
		want := (q.rear - q.front + q.capacity) % q.capacity
		if want == 0 && q.size == q.capacity {
			// full wraparound: equal indices with size > 0
			want = q.capacity
		}
		if q.size != want {
			t.Error("invariant err: size == ", q.size, " want ", want)
		}
	}
	out := make([]byte, 4)
	for i := int32(0); i < 50; i++ {
		_ = q.Enqueue(PutInt32(i))
		check()
		if i%3 == 0 {
			_ = q.Dequeue(out)
			check()
		}
	}
	q.Destroy()
}

func TestQueueArrayPeek(t *testing.T) {
	q := QueueArrayCreate(4)
	out := make([]byte, 4)
	if err := q.Peek(out); err != ERR_EMPTY_CONTAINER {
		t.Error("Peek err: expected empty container, got ", err)
	}
	if q.PeekRef() != nil {
		t.Error("PeekRef err: expected nil when empty")
	}
	_ = q.Enqueue(PutInt32(7))
	_ = q.Enqueue(PutInt32(8))
	if err := q.Peek(out); err != nil {
		t.Error("Peek err: ", err)
	}
	if Int32At(out) != 7 {
		t.Error("Peek err: v == ", Int32At(out))
	}
	if q.Len() != 2 {
		t.Error("Peek err: peek mutated size")
	}
	if Int32At(q.PeekRef()) != 7 {
		t.Error("PeekRef err: v == ", Int32At(q.PeekRef()))
	}
	q.Destroy()
}

func TestQueueArrayReserve(t *testing.T) {
	q := QueueArrayCreateWithCap(4, 4)
	for _, x := range []int32{1, 2, 3, 4} {
		_ = q.Enqueue(PutInt32(x))
	}
	out := make([]byte, 4)
	_ = q.Dequeue(out)
	_ = q.Enqueue(PutInt32(5)) // wraps
	// no-op when not exceeding the current capacity
	if err := q.Reserve(2); err != nil {
		t.Error("Reserve err: ", err)
	}
	if q.Cap() != 4 {
		t.Error("Reserve err: cap == ", q.Cap())
	}
	if err := q.Reserve(32); err != nil {
		t.Error("Reserve err: ", err)
	}
	if q.Cap() != 32 || q.front != 0 || q.rear != q.size {
		t.Error("Reserve err: cap == ", q.Cap(), " front == ", q.front, " rear == ", q.rear)
	}
	// FIFO order preserved across the unwrap
	for _, w := range []int32{2, 3, 4, 5} {
		_ = q.Dequeue(out)
		if Int32At(out) != w {
			t.Error("Reserve err: v == ", Int32At(out), " want ", w)
		}
	}
	q.Destroy()
}

func TestQueueListFIFO(t *testing.T) {
	q := QueueListCreate(4)
	if q == nil {
		t.Fatal("QueueListCreate err: nil")
	}
	for _, x := range []int32{1, 2, 3} {
		if err := q.Enqueue(PutInt32(x)); err != nil {
			t.Error("Enqueue err: ", err)
		}
	}
	out := make([]byte, 4)
	if err := q.Peek(out); err != nil {
		t.Error("Peek err: ", err)
	}
	if Int32At(out) != 1 {
		t.Error("Peek err: v == ", Int32At(out))
	}
	if Int32At(q.PeekRef()) != 1 {
		t.Error("PeekRef err: v == ", Int32At(q.PeekRef()))
	}
	for _, w := range []int32{1, 2, 3} {
		_ = q.Dequeue(out)
		if Int32At(out) != w {
			t.Error("Dequeue err: v == ", Int32At(out), " want ", w)
		}
	}
	if err := q.Dequeue(out); err != ERR_EMPTY_CONTAINER {
		t.Error("Dequeue err: expected empty container, got ", err)
	}
	q.Destroy()
}

// both queue variants behave identically through the shared interface
func TestQueueInterface(t *testing.T) {
	for _, q := range []Queue{QueueArrayCreate(4), QueueListCreate(4)} {
		for i := int32(0); i < 20; i++ {
			if err := q.Enqueue(PutInt32(i)); err != nil {
				t.Error("Enqueue err: ", err)
			}
		}
		out := make([]byte, 4)
		for i := int32(0); i < 20; i++ {
			if err := q.Dequeue(out); err != nil {
				t.Error("Dequeue err: ", err)
			}
			if Int32At(out) != i {
				t.Error("Dequeue err: v == ", Int32At(out), " want ", i)
			}
		}
		if !q.Empty() {
			t.Error("Dequeue err: not empty")
		}
		q.Destroy()
	}
}

func TestQueueDestroyIdempotent(t *testing.T) {
	q := QueueArrayCreate(4)
	q.Destroy()
	q.Destroy()
	var nilQ *QueueArray
	nilQ.Destroy()
	if err := nilQ.Enqueue(PutInt32(1)); err != ERR_INVALID_INPUT {
		t.Error("Enqueue err: expected invalid input, got ", err)
	}
	lq := QueueListCreate(4)
	lq.Destroy()
	lq.Destroy()
	if err := lq.Enqueue(PutInt32(1)); err != ERR_INVALID_INPUT {
		t.Error("Enqueue err: expected invalid input, got ", err)
	}
}
