package src

// QueueArray is a FIFO queue over a single circular buffer. Logical
// elements occupy slots [front, front+size) mod capacity and
// rear == (front + size) mod capacity always holds.
//
// Not safe for concurrent use, callers must serialize access.
type QueueArray struct {
	buf      []byte
	front    int
	rear     int
	size     int
	capacity int
	elemSize int
}

var _ Queue = (*QueueArray)(nil)
var _ capacity = (*QueueArray)(nil)

// QueueArrayCreate allocates an empty queue for elements of elemSize
// bytes with the default capacity. nil if elemSize <= 0 or allocation
// fails.
func QueueArrayCreate(elemSize int) *QueueArray {
	return QueueArrayCreateWithCap(elemSize, QUEUE_INITIAL_CAPACITY)
}

// QueueArrayCreateWithCap allocates an empty queue with the given
// capacity (0 means the default).
func QueueArrayCreateWithCap(elemSize, initialCap int) *QueueArray {
	if elemSize <= 0 {
		return nil
	}
	if initialCap <= 0 {
		initialCap = QUEUE_INITIAL_CAPACITY
	}
	buf := memCalloc(initialCap, elemSize)
	if buf == nil {
		return nil
	}
	q := new(QueueArray)
	q.buf = buf
	q.capacity = initialCap
	q.elemSize = elemSize
	return q
}

// Destroy releases the buffer. Safe on a nil or already-destroyed queue.
func (q *QueueArray) Destroy() {
	if q == nil {
		return
	}
	memFree(&q.buf)
	q.front = 0
	q.rear = 0
	q.size = 0
	q.capacity = 0
}

// resize moves the logical elements into a fresh linear buffer in
// natural order: a contiguous run (front < rear) is copied in one
// block, a wrapped run as the tail segment then the head segment.
// Afterwards front = 0 and rear = size.
func (q *QueueArray) resize(newCap int) error {
	if q == nil || newCap < q.size {
		return ERR_INVALID_INPUT
	}
	newBuf := memCalloc(newCap, q.elemSize)
	if newBuf == nil {
		return ERR_MEMORY_ALLOCATION
	}
	if q.size > 0 {
		if q.front < q.rear {
			memCopy(newBuf, q.buf[q.front*q.elemSize:], q.size*q.elemSize)
		} else {
			firstBytes := (q.capacity - q.front) * q.elemSize
			memCopy(newBuf, q.buf[q.front*q.elemSize:], firstBytes)
			memCopy(newBuf[firstBytes:], q.buf, q.rear*q.elemSize)
		}
	}
	memFree(&q.buf)
	q.buf = newBuf
	q.capacity = newCap
	q.front = 0
	q.rear = q.size
	return nil
}

// checkGrow doubles the capacity when the buffer is full. On failure the
// queue keeps its old buffer and state.
func (q *QueueArray) checkGrow() error {
	if q.size < q.capacity {
		return nil
	}
	return q.resize(maxInt(q.capacity*QUEUE_GROWTH_FACTOR, QUEUE_INITIAL_CAPACITY))
}

// Enqueue writes el at the rear slot and advances rear with wraparound.
// O(1) amortized.
func (q *QueueArray) Enqueue(el []byte) error {
	if q == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	if err := q.checkGrow(); err != nil {
		return err
	}
	memCopy(q.buf[q.rear*q.elemSize:], el, q.elemSize)
	q.rear = (q.rear + 1) % q.capacity
	q.size++
	return nil
}

// Dequeue reads the front slot into out (when out is not nil) and
// advances front with wraparound. O(1).
func (q *QueueArray) Dequeue(out []byte) error {
	if q == nil {
		return ERR_INVALID_INPUT
	}
	if q.size == 0 {
		return ERR_EMPTY_CONTAINER
	}
	if out != nil {
		memCopy(out, q.buf[q.front*q.elemSize:], q.elemSize)
	}
	q.front = (q.front + 1) % q.capacity
	q.size--
	return nil
}

// Peek copies the front element into out without mutating the queue.
func (q *QueueArray) Peek(out []byte) error {
	if q == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if q.size == 0 {
		return ERR_EMPTY_CONTAINER
	}
	memCopy(out, q.buf[q.front*q.elemSize:], q.elemSize)
	return nil
}

// PeekRef returns a view of the front element, nil when empty. The view
// aliases the buffer and is invalidated by any enqueue, dequeue or
// reserve.
func (q *QueueArray) PeekRef() []byte {
	if q == nil || q.size == 0 {
		return nil
	}
	off := q.front * q.elemSize
	return q.buf[off : off+q.elemSize]
}

func (q *QueueArray) Len() int {
	if q == nil {
		return 0
	}
	return q.size
}

func (q *QueueArray) Cap() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

func (q *QueueArray) Empty() bool {
	return q.Len() == 0
}

// Reserve grows capacity to at least newCap, unwrapping the buffer the
// same way growth does. No-op when newCap does not exceed the current
// capacity.
func (q *QueueArray) Reserve(newCap int) error {
	if q == nil {
		return ERR_INVALID_INPUT
	}
	if newCap <= q.capacity {
		return nil
	}
	return q.resize(newCap)
}

//-----------------------------------------------------------------------------
// list-backed queue
//-----------------------------------------------------------------------------

// QueueList is a FIFO queue over a singly linked list: enqueue at the
// tail, dequeue at the head, both O(1). It exposes the same contract as
// QueueArray so callers can switch backing storage without changing
// call sites.
type QueueList struct {
	list *SinglyList
}

var _ Queue = (*QueueList)(nil)

// QueueListCreate allocates an empty list-backed queue. nil if
// elemSize <= 0.
func QueueListCreate(elemSize int) *QueueList {
	l := SinglyListCreate(elemSize)
	if l == nil {
		return nil
	}
	return &QueueList{list: l}
}

// Destroy releases the owned list. Safe on a nil or already-destroyed
// queue.
func (q *QueueList) Destroy() {
	if q == nil {
		return
	}
	q.list.Destroy()
	q.list = nil
}

func (q *QueueList) Enqueue(el []byte) error {
	if q == nil || q.list == nil {
		return ERR_INVALID_INPUT
	}
	return q.list.PushBack(el)
}

func (q *QueueList) Dequeue(out []byte) error {
	if q == nil || q.list == nil {
		return ERR_INVALID_INPUT
	}
	return q.list.PopFront(out)
}

func (q *QueueList) Peek(out []byte) error {
	if q == nil || q.list == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if q.list.Empty() {
		return ERR_EMPTY_CONTAINER
	}
	return q.list.Get(0, out)
}

// PeekRef returns a view of the front element, nil when empty.
// Invalidated when the element is dequeued.
func (q *QueueList) PeekRef() []byte {
	if q == nil {
		return nil
	}
	return q.list.Front()
}

func (q *QueueList) Len() int {
	if q == nil {
		return 0
	}
	return q.list.Len()
}

func (q *QueueList) Empty() bool {
	return q.Len() == 0
}
