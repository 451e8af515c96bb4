package utils

import "unsafe"

const INT8 int8 = 1
const INT16 int16 = 1
const INT32 int32 = 1
const INT64 int64 = 1
const FLOAT32 float32 = 1
const FLOAT64 float64 = 1

// element widths for the fixed-size containers

func SizeofIn8() uintptr {
	return unsafe.Sizeof(INT8)
}

func SizeofIn16() uintptr {
	return unsafe.Sizeof(INT16)
}

func SizeofIn32() uintptr {
	return unsafe.Sizeof(INT32)
}

func SizeofIn64() uintptr {
	return unsafe.Sizeof(INT64)
}

func SizeofFloat32() uintptr {
	return unsafe.Sizeof(FLOAT32)
}

func SizeofFloat64() uintptr {
	return unsafe.Sizeof(FLOAT64)
}
