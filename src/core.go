package src

import (
	"math"
	"unsafe"

	"github.com/ILkUVayne/utlis-go/v2/ulog"
)

// Byte-region primitives. Every container in this package moves element
// bytes through these instead of touching its buffer directly, so the
// offset arithmetic and failure rules live in one place.

// memAlloc returns a fresh block of size bytes, nil if size <= 0.
// The block never aliases an existing one.
func memAlloc(size int) []byte {
	if size <= 0 {
		ulog.ErrorP("memAlloc err: attempted to allocate ", size, " bytes")
		return nil
	}
	return make([]byte, size)
}

// memCalloc returns a zero-filled block of count*size bytes. nil if
// count <= 0, size <= 0, or count*size overflows int.
func memCalloc(count, size int) []byte {
	if count <= 0 || size <= 0 {
		ulog.ErrorP("memCalloc err: attempted to allocate 0 elements or 0 size")
		return nil
	}
	if count > math.MaxInt/size {
		ulog.ErrorP("memCalloc err: allocation size overflow: ", count, " * ", size)
		return nil
	}
	return make([]byte, count*size)
}

// memRealloc resizes buf to size bytes, copying the common prefix. nil if
// size <= 0, in which case buf is untouched and still owned by the caller.
// On success buf must be treated as moved.
func memRealloc(buf []byte, size int) []byte {
	if size <= 0 {
		ulog.ErrorP("memRealloc err: attempted to reallocate to ", size, " bytes")
		return nil
	}
	if buf == nil {
		return memAlloc(size)
	}
	newBuf := make([]byte, size)
	copy(newBuf, buf)
	return newBuf
}

// memFree releases a block and clears the caller's handle. Safe on a nil
// handle or an already-released block.
func memFree(buf *[]byte) {
	if buf == nil || *buf == nil {
		return
	}
	*buf = nil
}

// memCopy copies n bytes from src to dst. Overlapping regions are
// undefined, use memMove for those.
func memCopy(dst, src []byte, n int) {
	if dst == nil || src == nil || n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
}

// memMove copies n bytes handling overlapping regions: when dst starts
// after src inside the same backing array it copies from the tail
// backward, else forward.
func memMove(dst, src []byte, n int) {
	if dst == nil || src == nil || n <= 0 {
		return
	}
	d := uintptr(unsafe.Pointer(&dst[0]))
	s := uintptr(unsafe.Pointer(&src[0]))
	if d > s && d < s+uintptr(n) {
		for i := n; i > 0; i-- {
			dst[i-1] = src[i-1]
		}
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
}

// memSet fills n bytes of dst with value.
func memSet(dst []byte, value byte, n int) {
	if dst == nil || n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		dst[i] = value
	}
}

// memCmp compares the first n bytes of a and b, returning the signed
// difference of the first mismatching pair, 0 if all equal.
func memCmp(a, b []byte, n int) int {
	if a == nil || b == nil {
		return 0
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

// memSwap exchanges size bytes between a and b through a scratch buffer.
// No-op if the heap scratch allocation fails.
func memSwap(a, b []byte, size int) {
	if a == nil || b == nil || size <= 0 {
		return
	}
	if size <= SWAP_STACK_BUF {
		var tmp [SWAP_STACK_BUF]byte
		memCopy(tmp[:], a, size)
		memCopy(a, b, size)
		memCopy(b, tmp[:], size)
		return
	}
	tmp := memAlloc(size)
	if tmp == nil {
		return
	}
	memCopy(tmp, a, size)
	memCopy(a, b, size)
	memCopy(b, tmp, size)
	memFree(&tmp)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
