// Package hwy reports the SIMD capabilities of the running CPU so that
// kernels in the contrib packages can pick an execution path once at startup.
//
// It follows the Highway C++ library's dispatch model: every kernel has a
// portable Go implementation, and architecture-specific files override it in
// init() when the CPU supports a wider instruction set.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-jpegdct/hwy"
//
//	if hwy.CurrentLevel().Wide() {
//		// 8 float32 lanes per register are available
//	}
//
// Set HWY_NO_SIMD=1 to force the scalar level regardless of the CPU.
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}
