package src

// Deque is a double-ended queue over a doubly linked list, exposing
// push/pop/peek at both ends plus indexed access. Indexed operations
// inherit the list's bidirectional lookup cost, averaged O(n/2).
//
// Not safe for concurrent use, callers must serialize access.
type Deque struct {
	list *DoublyList
}

var _ emptier = (*Deque)(nil)
var _ length = (*Deque)(nil)

// DequeCreate allocates an empty deque for elements of elemSize bytes.
// nil if elemSize <= 0.
func DequeCreate(elemSize int) *Deque {
	l := DoublyListCreate(elemSize)
	if l == nil {
		return nil
	}
	return &Deque{list: l}
}

// Destroy releases the owned list. Safe on a nil or already-destroyed
// deque.
func (d *Deque) Destroy() {
	if d == nil {
		return
	}
	d.list.Destroy()
	d.list = nil
}

func (d *Deque) PushFront(el []byte) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.PushFront(el)
}

func (d *Deque) PushBack(el []byte) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.PushBack(el)
}

func (d *Deque) PopFront(out []byte) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.PopFront(out)
}

func (d *Deque) PopBack(out []byte) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.PopBack(out)
}

func (d *Deque) PeekFront(out []byte) error {
	if d == nil || d.list == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if d.list.Empty() {
		return ERR_EMPTY_CONTAINER
	}
	return d.list.Get(0, out)
}

func (d *Deque) PeekBack(out []byte) error {
	if d == nil || d.list == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if d.list.Empty() {
		return ERR_EMPTY_CONTAINER
	}
	return d.list.Get(d.list.Len()-1, out)
}

// PeekFrontRef returns a view of the front element, nil when empty.
// Invalidated when the element is removed.
func (d *Deque) PeekFrontRef() []byte {
	if d == nil {
		return nil
	}
	return d.list.Front()
}

// PeekBackRef returns a view of the back element, nil when empty.
// Invalidated when the element is removed.
func (d *Deque) PeekBackRef() []byte {
	if d == nil {
		return nil
	}
	return d.list.Back()
}

func (d *Deque) Get(index int, out []byte) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.Get(index, out)
}

func (d *Deque) Set(index int, el []byte) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.Set(index, el)
}

func (d *Deque) Insert(index int, el []byte) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.Insert(index, el)
}

func (d *Deque) Remove(index int) error {
	if d == nil || d.list == nil {
		return ERR_INVALID_INPUT
	}
	return d.list.Remove(index)
}

func (d *Deque) Len() int {
	if d == nil {
		return 0
	}
	return d.list.Len()
}

func (d *Deque) Empty() bool {
	return d.Len() == 0
}
