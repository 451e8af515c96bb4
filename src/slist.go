package src

type singlyNode struct {
	data []byte
	next *singlyNode
}

// SinglyList is a singly linked list of fixed-size elements. head
// reaches tail by following next exactly size-1 times and tail.next is
// always nil. Each node owns a deep copy of its element.
//
// Not safe for concurrent use, callers must serialize access.
type SinglyList struct {
	head     *singlyNode
	tail     *singlyNode
	size     int
	elemSize int
}

var _ emptier = (*SinglyList)(nil)
var _ length = (*SinglyList)(nil)

// SinglyListCreate allocates an empty list for elements of elemSize
// bytes. nil if elemSize <= 0.
func SinglyListCreate(elemSize int) *SinglyList {
	if elemSize <= 0 {
		return nil
	}
	l := new(SinglyList)
	l.elemSize = elemSize
	return l
}

// newSinglyNode deep-copies el into an independently owned block.
func (l *SinglyList) newSinglyNode(el []byte) *singlyNode {
	data := memAlloc(l.elemSize)
	if data == nil {
		return nil
	}
	memCopy(data, el, l.elemSize)
	return &singlyNode{data: data}
}

// Destroy releases every node and empties the list. Safe on a nil or
// already-destroyed list.
func (l *SinglyList) Destroy() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		memFree(&n.data)
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Clear is Destroy for reuse: the list stays valid and empty.
func (l *SinglyList) Clear() {
	l.Destroy()
}

// Copy builds a deep copy in order. A mid-copy failure discards the
// partial copy and returns nil.
func (l *SinglyList) Copy() *SinglyList {
	if l == nil {
		return nil
	}
	dst := SinglyListCreate(l.elemSize)
	if dst == nil {
		return nil
	}
	for n := l.head; n != nil; n = n.next {
		if err := dst.PushBack(n.data); err != nil {
			dst.Destroy()
			return nil
		}
	}
	return dst
}

// _push links n as the only node when the list is empty, reporting
// whether it did.
func (l *SinglyList) _push(n *singlyNode) bool {
	l.size++
	if l.head == nil {
		l.head = n
		l.tail = n
		return true
	}
	return false
}

// PushFront inserts el at the head. O(1).
func (l *SinglyList) PushFront(el []byte) error {
	if l == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	n := l.newSinglyNode(el)
	if n == nil {
		return ERR_MEMORY_ALLOCATION
	}
	if l._push(n) {
		return nil
	}
	n.next = l.head
	l.head = n
	return nil
}

// PushBack appends el at the tail. O(1) via the tail reference.
func (l *SinglyList) PushBack(el []byte) error {
	if l == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	n := l.newSinglyNode(el)
	if n == nil {
		return ERR_MEMORY_ALLOCATION
	}
	if l._push(n) {
		return nil
	}
	l.tail.next = n
	l.tail = n
	return nil
}

// PopFront removes the head element, copying it to out when out is not
// nil. O(1).
func (l *SinglyList) PopFront(out []byte) error {
	if l == nil {
		return ERR_INVALID_INPUT
	}
	if l.size == 0 {
		return ERR_EMPTY_CONTAINER
	}
	n := l.head
	if out != nil {
		memCopy(out, n.data, l.elemSize)
	}
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	memFree(&n.data)
	n.next = nil
	l.size--
	return nil
}

// PopBack removes the tail element. O(n): without a backward pointer the
// predecessor of the tail has to be found by scanning from the head.
// This asymmetry with PopFront is intentional.
func (l *SinglyList) PopBack(out []byte) error {
	if l == nil {
		return ERR_INVALID_INPUT
	}
	if l.size == 0 {
		return ERR_EMPTY_CONTAINER
	}
	if out != nil {
		memCopy(out, l.tail.data, l.elemSize)
	}
	if l.size == 1 {
		memFree(&l.head.data)
		l.head = nil
		l.tail = nil
		l.size = 0
		return nil
	}
	pred := l.head
	for pred.next != l.tail {
		pred = pred.next
	}
	memFree(&l.tail.data)
	pred.next = nil
	l.tail = pred
	l.size--
	return nil
}

// nodeAt returns the node at index, traversing from the head. Interior
// indices never take a tail-relative shortcut, that is the doubly linked
// list's optimization.
func (l *SinglyList) nodeAt(index int) *singlyNode {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Insert places el at index. index == 0 and index == size take the O(1)
// push paths, interior indices cost O(n).
func (l *SinglyList) Insert(index int, el []byte) error {
	if l == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	if index < 0 || index > l.size {
		return ERR_INDEX_OUT_OF_BOUNDS
	}
	if index == 0 {
		return l.PushFront(el)
	}
	if index == l.size {
		return l.PushBack(el)
	}
	n := l.newSinglyNode(el)
	if n == nil {
		return ERR_MEMORY_ALLOCATION
	}
	pred := l.nodeAt(index - 1)
	n.next = pred.next
	pred.next = n
	l.size++
	return nil
}

// Remove deletes the element at index. Index 0 takes the O(1) pop path.
func (l *SinglyList) Remove(index int) error {
	if l == nil {
		return ERR_INVALID_INPUT
	}
	if index < 0 || index >= l.size {
		return ERR_INDEX_OUT_OF_BOUNDS
	}
	if index == 0 {
		return l.PopFront(nil)
	}
	pred := l.nodeAt(index - 1)
	n := pred.next
	pred.next = n.next
	if n == l.tail {
		l.tail = pred
	}
	memFree(&n.data)
	n.next = nil
	l.size--
	return nil
}

// Get copies the element at index into out. O(n) from the head.
func (l *SinglyList) Get(index int, out []byte) error {
	if l == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if index < 0 || index >= l.size {
		return ERR_INDEX_OUT_OF_BOUNDS
	}
	memCopy(out, l.nodeAt(index).data, l.elemSize)
	return nil
}

// Set overwrites the element at index with el. O(n) from the head.
func (l *SinglyList) Set(index int, el []byte) error {
	if l == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	if index < 0 || index >= l.size {
		return ERR_INDEX_OUT_OF_BOUNDS
	}
	memCopy(l.nodeAt(index).data, el, l.elemSize)
	return nil
}

// GetRef returns a view of the element at index, nil when out of range.
// The view aliases node storage and is invalidated when the node is
// removed or the list destroyed.
func (l *SinglyList) GetRef(index int) []byte {
	if l == nil || index < 0 || index >= l.size {
		return nil
	}
	return l.nodeAt(index).data
}

// Front returns a view of the head element, nil when empty.
func (l *SinglyList) Front() []byte {
	if l == nil || l.head == nil {
		return nil
	}
	return l.head.data
}

// Back returns a view of the tail element, nil when empty.
func (l *SinglyList) Back() []byte {
	if l == nil || l.tail == nil {
		return nil
	}
	return l.tail.data
}

func (l *SinglyList) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *SinglyList) Empty() bool {
	return l.Len() == 0
}

// ElemSize returns the fixed element width in bytes.
func (l *SinglyList) ElemSize() int {
	if l == nil {
		return 0
	}
	return l.elemSize
}

// Find returns the index of the first element equal to el under cmp,
// NOT_FOUND_IDX on a miss.
func (l *SinglyList) Find(el []byte, cmp CmpFunc) int {
	if l == nil || el == nil || cmp == nil {
		return NOT_FOUND_IDX
	}
	i := 0
	for n := l.head; n != nil; n = n.next {
		if cmp(n.data, el) == 0 {
			return i
		}
		i++
	}
	return NOT_FOUND_IDX
}

// Contains reports whether el occurs in the list under cmp.
func (l *SinglyList) Contains(el []byte, cmp CmpFunc) bool {
	return l.Find(el, cmp) >= 0
}

// Reverse relinks every node's next to its predecessor in place, then
// swaps the head and tail roles. O(n) time, O(1) extra space.
func (l *SinglyList) Reverse() error {
	if l == nil {
		return ERR_INVALID_INPUT
	}
	if l.size <= 1 {
		return nil
	}
	var prev *singlyNode
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	l.head, l.tail = l.tail, l.head
	return nil
}

// Swap exchanges the whole storage of two lists in O(1).
func (l *SinglyList) Swap(other *SinglyList) {
	if l == nil || other == nil {
		return
	}
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
	l.elemSize, other.elemSize = other.elemSize, l.elemSize
}

//-----------------------------------------------------------------------------
// iterator
//-----------------------------------------------------------------------------

// SinglyListIter is a forward cursor bound to one list. position counts
// the elements already returned by Next.
type SinglyListIter struct {
	list     *SinglyList
	current  *singlyNode
	position int
}

// IterCreate returns a cursor positioned at the head.
func (l *SinglyList) IterCreate() *SinglyListIter {
	it := new(SinglyListIter)
	it.list = l
	if l != nil {
		it.current = l.head
	}
	return it
}

// HasNext reports whether the cursor is on a node.
func (it *SinglyListIter) HasNext() bool {
	return it != nil && it.current != nil
}

// Next copies the current element to out (when out is not nil) and
// advances the cursor.
func (it *SinglyListIter) Next(out []byte) error {
	if it == nil || it.list == nil {
		return ERR_INVALID_INPUT
	}
	if it.current == nil {
		return ERR_EMPTY_CONTAINER
	}
	if out != nil {
		memCopy(out, it.current.data, it.list.elemSize)
	}
	it.current = it.current.next
	it.position++
	return nil
}

// Remove deletes the last element returned by Next, i.e. the node at
// position-1. Requires at least one prior Next call. This is index-based
// removal re-scanning from the head, O(n) by contract, not a node
// splice.
func (it *SinglyListIter) Remove() error {
	if it == nil || it.list == nil {
		return ERR_INVALID_INPUT
	}
	if it.position == 0 {
		return ERR_INVALID_INPUT
	}
	if err := it.list.Remove(it.position - 1); err != nil {
		return err
	}
	it.position--
	return nil
}
