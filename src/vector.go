package src

import "math"

// Vector is a contiguous growable buffer of fixed-size elements stored at
// offsets i*elemSize. size <= capacity always holds; buf is valid iff
// capacity > 0.
//
// A Vector is single-owner and not safe for concurrent use, callers must
// serialize access.
type Vector struct {
	buf      []byte
	size     int
	capacity int
	elemSize int
}

var _ emptier = (*Vector)(nil)
var _ length = (*Vector)(nil)
var _ capacity = (*Vector)(nil)

// VectorCreate allocates an empty vector for elements of elemSize bytes
// with the default initial capacity. nil if elemSize <= 0 or allocation
// fails.
func VectorCreate(elemSize int) *Vector {
	return VectorCreateWithCap(elemSize, VECTOR_INITIAL_CAPACITY)
}

// VectorCreateWithCap allocates an empty vector with the given initial
// capacity (0 means the default).
func VectorCreateWithCap(elemSize, initialCap int) *Vector {
	if elemSize <= 0 {
		return nil
	}
	if initialCap <= 0 {
		initialCap = VECTOR_INITIAL_CAPACITY
	}
	buf := memCalloc(initialCap, elemSize)
	if buf == nil {
		return nil
	}
	v := new(Vector)
	v.buf = buf
	v.capacity = initialCap
	v.elemSize = elemSize
	return v
}

// Destroy releases the buffer. Safe on a nil or already-destroyed vector.
func (v *Vector) Destroy() {
	if v == nil {
		return
	}
	memFree(&v.buf)
	v.size = 0
	v.capacity = 0
}

// Copy builds a deep copy by appending each source element in order. A
// mid-copy failure discards the partial copy and returns nil.
func (v *Vector) Copy() *Vector {
	if v == nil {
		return nil
	}
	dst := VectorCreateWithCap(v.elemSize, v.capacity)
	if dst == nil {
		return nil
	}
	for i := 0; i < v.size; i++ {
		if err := dst.PushBack(v.at(i)); err != nil {
			dst.Destroy()
			return nil
		}
	}
	return dst
}

// at returns the byte region of element i without bounds checking.
func (v *Vector) at(i int) []byte {
	off := i * v.elemSize
	return v.buf[off : off+v.elemSize]
}

func (v *Vector) checkIndex(index int) error {
	return checkCondition(index >= 0 && index < v.size, ERR_INDEX_OUT_OF_BOUNDS)
}

// checkGrow resizes when size has reached capacity: 1.5x growth, floored
// at the initial capacity, bumped by one when that does not strictly
// exceed the current capacity. On failure the vector is left intact.
func (v *Vector) checkGrow() error {
	if v.size < v.capacity {
		return nil
	}
	newCap := maxInt(v.capacity*3/2, VECTOR_INITIAL_CAPACITY)
	if newCap <= v.capacity {
		newCap = v.capacity + 1
	}
	return v.Reserve(newCap)
}

// PushBack appends el, growing storage as needed. O(1) amortized.
func (v *Vector) PushBack(el []byte) error {
	if v == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	if err := v.checkGrow(); err != nil {
		return err
	}
	memCopy(v.at(v.size), el, v.elemSize)
	v.size++
	return nil
}

// PopBack removes the last element, copying it to out when out is not
// nil. Capacity is kept, use ShrinkToFit to release it.
func (v *Vector) PopBack(out []byte) error {
	if v == nil {
		return ERR_INVALID_INPUT
	}
	if v.size == 0 {
		return ERR_EMPTY_CONTAINER
	}
	if out != nil {
		memCopy(out, v.at(v.size-1), v.elemSize)
	}
	v.size--
	return nil
}

// Insert places el at index, shifting [index, size) one element forward.
// index == size delegates to PushBack.
func (v *Vector) Insert(index int, el []byte) error {
	if v == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	if index < 0 || index > v.size {
		return ERR_INDEX_OUT_OF_BOUNDS
	}
	if index == v.size {
		return v.PushBack(el)
	}
	if err := v.checkGrow(); err != nil {
		return err
	}
	moveBytes := (v.size - index) * v.elemSize
	memMove(v.buf[(index+1)*v.elemSize:], v.buf[index*v.elemSize:], moveBytes)
	memCopy(v.at(index), el, v.elemSize)
	v.size++
	return nil
}

// Remove deletes the element at index, shifting [index+1, size) one
// element backward. The last index delegates to a truncating PopBack.
func (v *Vector) Remove(index int) error {
	if v == nil {
		return ERR_INVALID_INPUT
	}
	if err := v.checkIndex(index); err != nil {
		return err
	}
	if index == v.size-1 {
		return v.PopBack(nil)
	}
	moveBytes := (v.size - index - 1) * v.elemSize
	memMove(v.buf[index*v.elemSize:], v.buf[(index+1)*v.elemSize:], moveBytes)
	v.size--
	return nil
}

// Clear drops all elements but keeps the capacity for reuse.
func (v *Vector) Clear() {
	if v == nil {
		return
	}
	v.size = 0
}

// Get copies the element at index into out.
func (v *Vector) Get(index int, out []byte) error {
	if v == nil || out == nil {
		return ERR_INVALID_INPUT
	}
	if err := v.checkIndex(index); err != nil {
		return err
	}
	memCopy(out, v.at(index), v.elemSize)
	return nil
}

// Set overwrites the element at index with el.
func (v *Vector) Set(index int, el []byte) error {
	if v == nil || el == nil {
		return ERR_INVALID_INPUT
	}
	if err := v.checkIndex(index); err != nil {
		return err
	}
	memCopy(v.at(index), el, v.elemSize)
	return nil
}

// At returns a mutable view of the element at index, nil when index is
// out of range. The view aliases the buffer and is invalidated by any
// call that may reallocate or shift it (push, insert, remove, reserve,
// shrink); do not retain it across such calls.
func (v *Vector) At(index int) []byte {
	if v == nil || index < 0 || index >= v.size {
		return nil
	}
	return v.at(index)
}

// AtConst is At for read-only use; the same invalidation rule applies.
func (v *Vector) AtConst(index int) []byte {
	return v.At(index)
}

// Front returns a view of the first element, nil when empty.
func (v *Vector) Front() []byte {
	return v.At(0)
}

// Back returns a view of the last element, nil when empty.
func (v *Vector) Back() []byte {
	if v == nil {
		return nil
	}
	return v.At(v.size - 1)
}

func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

func (v *Vector) Cap() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

func (v *Vector) Empty() bool {
	return v.Len() == 0
}

// ElemSize returns the fixed element width in bytes.
func (v *Vector) ElemSize() int {
	if v == nil {
		return 0
	}
	return v.elemSize
}

// Reserve grows capacity to at least newCap. No-op when newCap does not
// exceed the current capacity. On failure the vector keeps its old
// buffer and capacity.
func (v *Vector) Reserve(newCap int) error {
	if v == nil {
		return ERR_INVALID_INPUT
	}
	if newCap <= v.capacity {
		return nil
	}
	if newCap > math.MaxInt/v.elemSize {
		return ERR_MEMORY_ALLOCATION
	}
	newBuf := memRealloc(v.buf, newCap*v.elemSize)
	if newBuf == nil {
		return ERR_MEMORY_ALLOCATION
	}
	v.buf = newBuf
	v.capacity = newCap
	return nil
}

// ShrinkToFit reallocates down to exactly size elements; an empty vector
// releases the buffer entirely and drops capacity to 0.
func (v *Vector) ShrinkToFit() error {
	if v == nil {
		return ERR_INVALID_INPUT
	}
	if v.size == v.capacity {
		return nil
	}
	if v.size == 0 {
		memFree(&v.buf)
		v.capacity = 0
		return nil
	}
	newBuf := memRealloc(v.buf, v.size*v.elemSize)
	if newBuf == nil {
		return ERR_MEMORY_ALLOCATION
	}
	v.buf = newBuf
	v.capacity = v.size
	return nil
}

// Find returns the index of the first element equal to el under cmp,
// NOT_FOUND_IDX on a miss.
func (v *Vector) Find(el []byte, cmp CmpFunc) int {
	if v == nil || el == nil || cmp == nil {
		return NOT_FOUND_IDX
	}
	for i := 0; i < v.size; i++ {
		if cmp(v.at(i), el) == 0 {
			return i
		}
	}
	return NOT_FOUND_IDX
}

// Contains reports whether el occurs in the vector under cmp.
func (v *Vector) Contains(el []byte, cmp CmpFunc) bool {
	return v.Find(el, cmp) >= 0
}

// Swap exchanges the whole storage of two vectors in O(1) without
// copying element data.
func (v *Vector) Swap(other *Vector) {
	if v == nil || other == nil {
		return
	}
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.elemSize, other.elemSize = other.elemSize, v.elemSize
}

// ForEach applies fn to every element in order. fn receives a view into
// the buffer and must not grow or shrink the vector.
func (v *Vector) ForEach(fn ForEachFunc) {
	if v == nil || fn == nil {
		return
	}
	for i := 0; i < v.size; i++ {
		fn(v.at(i))
	}
}
