package src

// StackArray is a LIFO stack over a Vector, pushing and popping at the
// vector's tail. O(1) amortized.
//
// Not safe for concurrent use, callers must serialize access.
type StackArray struct {
	vec *Vector
}

var _ Stack = (*StackArray)(nil)
var _ capacity = (*StackArray)(nil)

// StackArrayCreate allocates an empty array-backed stack. nil if
// elemSize <= 0 or allocation fails.
func StackArrayCreate(elemSize int) *StackArray {
	v := VectorCreate(elemSize)
	if v == nil {
		return nil
	}
	return &StackArray{vec: v}
}

// StackArrayCreateWithCap allocates an empty stack with the given
// initial capacity (0 means the default).
func StackArrayCreateWithCap(elemSize, initialCap int) *StackArray {
	v := VectorCreateWithCap(elemSize, initialCap)
	if v == nil {
		return nil
	}
	return &StackArray{vec: v}
}

// Destroy releases the owned vector. Safe on a nil or already-destroyed
// stack.
func (s *StackArray) Destroy() {
	if s == nil {
		return
	}
	s.vec.Destroy()
	s.vec = nil
}

func (s *StackArray) Push(el []byte) error {
	if s == nil || s.vec == nil {
		return ERR_INVALID_INPUT
	}
	return s.vec.PushBack(el)
}

func (s *StackArray) Pop(out []byte) error {
	if s == nil || s.vec == nil {
		return ERR_INVALID_INPUT
	}
	return s.vec.PopBack(out)
}

func (s *StackArray) Peek(out []byte) error {
	if s == nil || s.vec == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if s.vec.Empty() {
		return ERR_EMPTY_CONTAINER
	}
	return s.vec.Get(s.vec.Len()-1, out)
}

// PeekRef returns a view of the top element, nil when empty.
// Invalidated by any push, pop or reserve.
func (s *StackArray) PeekRef() []byte {
	if s == nil {
		return nil
	}
	return s.vec.Back()
}

func (s *StackArray) Len() int {
	if s == nil {
		return 0
	}
	return s.vec.Len()
}

func (s *StackArray) Cap() int {
	if s == nil {
		return 0
	}
	return s.vec.Cap()
}

func (s *StackArray) Empty() bool {
	return s.Len() == 0
}

// Reserve pre-allocates capacity for at least newCap elements.
func (s *StackArray) Reserve(newCap int) error {
	if s == nil || s.vec == nil {
		return ERR_INVALID_INPUT
	}
	return s.vec.Reserve(newCap)
}

//-----------------------------------------------------------------------------
// list-backed stack
//-----------------------------------------------------------------------------

// StackList is a LIFO stack over a singly linked list, pushing and
// popping at the list's head. O(1). Same contract as StackArray so
// callers can switch backing storage without changing call sites.
type StackList struct {
	list *SinglyList
}

var _ Stack = (*StackList)(nil)

// StackListCreate allocates an empty list-backed stack. nil if
// elemSize <= 0.
func StackListCreate(elemSize int) *StackList {
	l := SinglyListCreate(elemSize)
	if l == nil {
		return nil
	}
	return &StackList{list: l}
}

// Destroy releases the owned list. Safe on a nil or already-destroyed
// stack.
func (s *StackList) Destroy() {
	if s == nil {
		return
	}
	s.list.Destroy()
	s.list = nil
}

func (s *StackList) Push(el []byte) error {
	if s == nil || s.list == nil {
		return ERR_INVALID_INPUT
	}
	return s.list.PushFront(el)
}

func (s *StackList) Pop(out []byte) error {
	if s == nil || s.list == nil {
		return ERR_INVALID_INPUT
	}
	return s.list.PopFront(out)
}

func (s *StackList) Peek(out []byte) error {
	if s == nil || s.list == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if s.list.Empty() {
		return ERR_EMPTY_CONTAINER
	}
	return s.list.Get(0, out)
}

// PeekRef returns a view of the top element, nil when empty.
// Invalidated when the element is popped.
func (s *StackList) PeekRef() []byte {
	if s == nil {
		return nil
	}
	return s.list.Front()
}

func (s *StackList) Len() int {
	if s == nil {
		return 0
	}
	return s.list.Len()
}

func (s *StackList) Empty() bool {
	return s.Len() == 0
}
