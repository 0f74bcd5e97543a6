// Command libdragon4 is a C shared library exposing the conversions of
// package dragon4 to callers that do not share the Go heap.
//
// Build it with:
//
//	go build -buildmode=c-shared -o libdragon4.so ./cmd/libdragon4
//
// Digits are copied into C memory obtained from malloc. Ownership of that
// memory passes to the caller with the returned buffer, and the caller must
// hand every buffer with len > 0 back to dragon4_free exactly once.
// The buffer must not be resized, reinterpreted or read after it is freed.
//
// This file is the only place where Go code touches C memory.
package main

/*
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct {
	int16_t k;
	size_t len;
	uint8_t *data;
} dragon4_buffer;
*/
import "C"

import (
	"unsafe"

	"github.com/govalues/dragon4"
)

//export dragon4_shortest
func dragon4_shortest(f C.double) C.dragon4_buffer {
	return shortest(float64(f))
}

//export dragon4_fixed
func dragon4_fixed(f C.double, precision C.int16_t) C.dragon4_buffer {
	return fixed(float64(f), int16(precision))
}

//export dragon4_exponent
func dragon4_exponent(f C.double, limit C.int16_t) C.dragon4_buffer {
	return exponent(float64(f), int16(limit))
}

//export dragon4_free
func dragon4_free(b C.dragon4_buffer) {
	release(b)
}

func shortest(f float64) C.dragon4_buffer {
	return export(dragon4.Shortest(f))
}

func fixed(f float64, precision int16) C.dragon4_buffer {
	return export(dragon4.Fixed(f, int(precision)))
}

// exponent treats a negative limit as 0.
func exponent(f float64, limit int16) C.dragon4_buffer {
	return export(dragon4.Exponent(f, int(limit)))
}

// export copies d into C memory.
// An empty d is returned with a nil data pointer and nothing is allocated.
func export(d dragon4.Digits) C.dragon4_buffer {
	b := C.dragon4_buffer{k: C.int16_t(d.Exp())}
	n := d.Len()
	if n == 0 {
		return b
	}
	p := C.malloc(C.size_t(n))
	copy(unsafe.Slice((*byte)(p), n), d.Bytes())
	acquire(p, n)
	b.len = C.size_t(n)
	b.data = (*C.uint8_t)(p)
	return b
}

// release frees the digits of b.
// Buffers that were not handed out by export, or were already released,
// are reported and left alone.
func release(b C.dragon4_buffer) {
	if b.len == 0 {
		return
	}
	p := unsafe.Pointer(b.data)
	if !forget(p, int(b.len)) {
		return
	}
	C.free(p)
}

// view, size and isNull let the package tests inspect buffers, since
// test files cannot use cgo.

// view returns a Go copy of the digits and the exponent of b.
func view(b C.dragon4_buffer) ([]byte, int16) {
	if b.len == 0 {
		return nil, int16(b.k)
	}
	return C.GoBytes(unsafe.Pointer(b.data), C.int(b.len)), int16(b.k)
}

// size returns the digit count of b.
func size(b C.dragon4_buffer) int {
	return int(b.len)
}

// isNull reports whether the data pointer of b is nil.
func isNull(b C.dragon4_buffer) bool {
	return b.data == nil
}

func main() {}
