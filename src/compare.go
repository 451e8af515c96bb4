package src

import (
	"encoding/binary"
	"math"
)

// CmpFunc compares two elements given as raw byte regions. It must return
// a negative, zero or positive value and stay deterministic per element
// pair: every find/contains operation depends on it.
type CmpFunc func(a, b []byte) int

// ForEachFunc is applied in order to every element. It receives a view
// into the container's storage and cannot short-circuit the walk.
type ForEachFunc func(el []byte)

//-----------------------------------------------------------------------------
// scalar adapters
//-----------------------------------------------------------------------------

// Int32Compare compares two 4-byte native-endian signed integers.
func Int32Compare(a, b []byte) int {
	x, y := int32(binary.NativeEndian.Uint32(a)), int32(binary.NativeEndian.Uint32(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Int64Compare compares two 8-byte native-endian signed integers.
func Int64Compare(a, b []byte) int {
	x, y := int64(binary.NativeEndian.Uint64(a)), int64(binary.NativeEndian.Uint64(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Float32Compare compares two 4-byte native-endian floats.
func Float32Compare(a, b []byte) int {
	x := math.Float32frombits(binary.NativeEndian.Uint32(a))
	y := math.Float32frombits(binary.NativeEndian.Uint32(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Float64Compare compares two 8-byte native-endian floats.
func Float64Compare(a, b []byte) int {
	x := math.Float64frombits(binary.NativeEndian.Uint64(a))
	y := math.Float64frombits(binary.NativeEndian.Uint64(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// ByteCompare compares two single-byte elements.
func ByteCompare(a, b []byte) int {
	return int(a[0]) - int(b[0])
}

//-----------------------------------------------------------------------------
// element codecs
//-----------------------------------------------------------------------------

// Callers hand elements to containers as native-endian memory images.
// These helpers build and read such images for the common scalar widths.

func PutInt32(v int32) []byte {
	buf := make([]byte, 4)
	binary.NativeEndian.PutUint32(buf, uint32(v))
	return buf
}

func Int32At(el []byte) int32 {
	return int32(binary.NativeEndian.Uint32(el))
}

func PutInt64(v int64) []byte {
	buf := make([]byte, 8)
	binary.NativeEndian.PutUint64(buf, uint64(v))
	return buf
}

func Int64At(el []byte) int64 {
	return int64(binary.NativeEndian.Uint64(el))
}

func PutFloat64(v float64) []byte {
	buf := make([]byte, 8)
	binary.NativeEndian.PutUint64(buf, math.Float64bits(v))
	return buf
}

func Float64At(el []byte) float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(el))
}
