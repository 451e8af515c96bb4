package src

type doublyNode struct {
	data []byte
	prev *doublyNode
	next *doublyNode
}

func (n *doublyNode) nodeNext() *doublyNode {
	return n.next
}

func (n *doublyNode) nodePrev() *doublyNode {
	return n.prev
}

// DoublyList is a doubly linked list of fixed-size elements. For every
// non-head node node.prev.next == node and symmetrically for next.prev;
// head.prev and tail.next are always nil. prev links are traversal-only
// back-references, nodes are owned through the next chain.
//
// Not safe for concurrent use, callers must serialize access.
type DoublyList struct {
	head     *doublyNode
	tail     *doublyNode
	size     int
	elemSize int
}

var _ emptier = (*DoublyList)(nil)
var _ length = (*DoublyList)(nil)

// DoublyListCreate allocates an empty list for elements of elemSize
// bytes. nil if elemSize <= 0.
func DoublyListCreate(elemSize int) *DoublyList {
	if elemSize <= 0 {
		return nil
	}
	l := new(DoublyList)
	l.elemSize = elemSize
	return l
}

func (l *DoublyList) newDoublyNode(el []byte) *doublyNode {
	data := memAlloc(l.elemSize)
	if data == nil {
		return nil
	}
	memCopy(data, el, l.elemSize)
	return &doublyNode{data: data}
}

// Destroy releases every node and empties the list. Safe on a nil or
// already-destroyed list.
func (l *DoublyList) Destroy() {
	if l == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		memFree(&n.data)
		n.prev = nil
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Clear is Destroy for reuse: the list stays valid and empty.
func (l *DoublyList) Clear() {
	l.Destroy()
}

// Copy builds a deep copy in order. A mid-copy failure discards the
// partial copy and returns nil.
func (l *DoublyList) Copy() *DoublyList {
	if l == nil {
		return nil
	}
	dst := DoublyListCreate(l.elemSize)
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
func (l *DoublyList) _push(n *doublyNode) bool {
	l.size++
	if l.head == nil {
		l.head = n
		l.tail = n
		return true
	}
	return false
}

// PushFront inserts el at the head. O(1).
func (l *DoublyList) PushFront(el []byte) error {
	if l == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	n := l.newDoublyNode(el)
	if n == nil {
		return ERR_MEMORY_ALLOCATION
	}
	if l._push(n) {
		return nil
	}
	n.next = l.head
	l.head.prev = n
	l.head = n
	return nil
}

// PushBack appends el at the tail. O(1).
func (l *DoublyList) PushBack(el []byte) error {
	if l == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	n := l.newDoublyNode(el)
	if n == nil {
		return ERR_MEMORY_ALLOCATION
	}
	if l._push(n) {
		return nil
	}
	n.prev = l.tail
	l.tail.next = n
	l.tail = n
	return nil
}

// PopFront removes the head element, copying it to out when out is not
// nil. O(1).
func (l *DoublyList) PopFront(out []byte) error {
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
	l.delNode(n)
	return nil
}

// PopBack removes the tail element. O(1), the symmetric counterpart of
// PopFront.
func (l *DoublyList) PopBack(out []byte) error {
	if l == nil {
		return ERR_INVALID_INPUT
	}
	if l.size == 0 {
		return ERR_EMPTY_CONTAINER
	}
	n := l.tail
	if out != nil {
		memCopy(out, n.data, l.elemSize)
	}
	l.delNode(n)
	return nil
}

// delNode unlinks n from the list, updating head/tail when n is an
// endpoint, and releases its element block.
func (l *DoublyList) delNode(n *doublyNode) {
	if n == nil || l.size == 0 {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	memFree(&n.data)
	n.prev = nil
	n.next = nil
	l.size--
}

// nodeAt locates the node at index, traversing from the head when the
// index falls in the first half and from the tail otherwise. Averaged
// O(n/2) instead of O(n).
func (l *DoublyList) nodeAt(index int) *doublyNode {
	if index < l.size/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// Insert places el at index. Index 0 and the last index always take the
// dedicated O(1) head/tail paths; interior indices locate the node
// bidirectionally and splice in O(1).
func (l *DoublyList) Insert(index int, el []byte) error {
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
	return l.InsertBefore(l.nodeAt(index), el)
}

// Remove deletes the element at index, taking the O(1) endpoint paths
// when possible.
func (l *DoublyList) Remove(index int) error {
	if l == nil {
		return ERR_INVALID_INPUT
	}
	if index < 0 || index >= l.size {
		return ERR_INDEX_OUT_OF_BOUNDS
	}
	if index == 0 {
		return l.PopFront(nil)
	}
	if index == l.size-1 {
		return l.PopBack(nil)
	}
	l.delNode(l.nodeAt(index))
	return nil
}

// InsertBefore splices a copy of el before node in O(1), updating the
// head reference when node is the head.
func (l *DoublyList) InsertBefore(node *doublyNode, el []byte) error {
	if l == nil || node == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	n := l.newDoublyNode(el)
	if n == nil {
		return ERR_MEMORY_ALLOCATION
	}
	n.prev = node.prev
	n.next = node
	if node.prev != nil {
		node.prev.next = n
	} else {
		l.head = n
	}
	node.prev = n
	l.size++
	return nil
}

// InsertAfter splices a copy of el after node in O(1), updating the tail
// reference when node is the tail.
func (l *DoublyList) InsertAfter(node *doublyNode, el []byte) error {
	if l == nil || node == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	n := l.newDoublyNode(el)
	if n == nil {
		return ERR_MEMORY_ALLOCATION
	}
	n.prev = node
	n.next = node.next
	if node.next != nil {
		node.next.prev = n
	} else {
		l.tail = n
	}
	node.next = n
	l.size++
	return nil
}

// Get copies the element at index into out via the bidirectional lookup.
func (l *DoublyList) Get(index int, out []byte) error {
	if l == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if index < 0 || index >= l.size {
		return ERR_INDEX_OUT_OF_BOUNDS
	}
	memCopy(out, l.nodeAt(index).data, l.elemSize)
	return nil
}

// Set overwrites the element at index with el via the bidirectional
// lookup.
func (l *DoublyList) Set(index int, el []byte) error {
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
func (l *DoublyList) GetRef(index int) []byte {
	if l == nil || index < 0 || index >= l.size {
		return nil
	}
	return l.nodeAt(index).data
}

// First returns the head node, for node-relative splicing.
func (l *DoublyList) First() *doublyNode {
	if l == nil {
		return nil
	}
	return l.head
}

// Last returns the tail node, for node-relative splicing.
func (l *DoublyList) Last() *doublyNode {
	if l == nil {
		return nil
	}
	return l.tail
}

// Front returns a view of the head element, nil when empty.
func (l *DoublyList) Front() []byte {
	if l == nil || l.head == nil {
		return nil
	}
	return l.head.data
}

// Back returns a view of the tail element, nil when empty.
func (l *DoublyList) Back() []byte {
	if l == nil || l.tail == nil {
		return nil
	}
	return l.tail.data
}

func (l *DoublyList) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *DoublyList) Empty() bool {
	return l.Len() == 0
}

// ElemSize returns the fixed element width in bytes.
func (l *DoublyList) ElemSize() int {
	if l == nil {
		return 0
	}
	return l.elemSize
}

// Find returns the index of the first element equal to el under cmp,
// NOT_FOUND_IDX on a miss.
func (l *DoublyList) Find(el []byte, cmp CmpFunc) int {
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
func (l *DoublyList) Contains(el []byte, cmp CmpFunc) bool {
	return l.Find(el, cmp) >= 0
}

// Reverse swaps the head and tail references, then walks every node
// swapping its prev and next fields. O(n) time, O(1) extra space.
func (l *DoublyList) Reverse() error {
	if l == nil {
		return ERR_INVALID_INPUT
	}
	if l.size <= 1 {
		return nil
	}
	l.head, l.tail = l.tail, l.head
	for n := l.head; n != nil; {
		n.prev, n.next = n.next, n.prev
		// after the field swap, next leads toward the old head
		n = n.next
	}
	return nil
}

// Swap exchanges the whole storage of two lists in O(1).
func (l *DoublyList) Swap(other *DoublyList) {
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

// DoublyListIter is a single bidirectional cursor. HasNext and HasPrev
// both report "the cursor is on a node": a forward cursor that ran off
// the tail answers false to both, it does not distinguish the direction
// of exhaustion. Create the cursor with the constructor matching the
// traversal direction.
type DoublyListIter struct {
	list      *DoublyList
	current   *doublyNode
	position  int
	direction int
}

// IterCreate returns a cursor positioned at the head for forward
// traversal.
func (l *DoublyList) IterCreate() *DoublyListIter {
	it := new(DoublyListIter)
	it.list = l
	it.direction = DL_START_HEAD
	if l != nil {
		it.current = l.head
	}
	return it
}

// IterCreateReverse returns a cursor positioned at the tail for reverse
// traversal.
func (l *DoublyList) IterCreateReverse() *DoublyListIter {
	it := new(DoublyListIter)
	it.list = l
	it.direction = DL_START_TAIL
	if l != nil && l.tail != nil {
		it.current = l.tail
		it.position = l.size - 1
	}
	return it
}

// HasNext reports whether the cursor is on a node.
func (it *DoublyListIter) HasNext() bool {
	return it != nil && it.current != nil
}

// HasPrev reports whether the cursor is on a node.
func (it *DoublyListIter) HasPrev() bool {
	return it != nil && it.current != nil
}

// Next copies the current element to out (when out is not nil) and
// advances toward the tail.
func (it *DoublyListIter) Next(out []byte) error {
	if it == nil || it.list == nil {
		return ERR_INVALID_INPUT
	}
	if it.current == nil {
		return ERR_EMPTY_CONTAINER
	}
	if out != nil {
		memCopy(out, it.current.data, it.list.elemSize)
	}
	it.current = it.current.nodeNext()
	it.position++
	return nil
}

// Prev copies the current element to out (when out is not nil) and
// advances toward the head.
func (it *DoublyListIter) Prev(out []byte) error {
	if it == nil || it.list == nil {
		return ERR_INVALID_INPUT
	}
	if it.current == nil {
		return ERR_EMPTY_CONTAINER
	}
	if out != nil {
		memCopy(out, it.current.data, it.list.elemSize)
	}
	it.current = it.current.nodePrev()
	it.position--
	return nil
}

// Remove splices out the current node in O(1), relinking its neighbors
// (or the list's head/tail when the node is an endpoint), then advances
// the cursor to the node that followed the removed one.
func (it *DoublyListIter) Remove() error {
	if it == nil || it.list == nil || it.current == nil {
		return ERR_INVALID_INPUT
	}
	toRemove := it.current
	it.current = toRemove.next
	it.list.delNode(toRemove)
	return nil
}
