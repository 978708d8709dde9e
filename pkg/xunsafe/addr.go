//go:build go1.21

package xunsafe

import (
	"fmt"
	"unsafe"

	"github.com/flier/patricia/pkg/xunsafe/layout"
)

// Addr is a type-safe address: a pointer that does not keep its referent
// alive and that supports ordinary integer arithmetic.
//
// Addr values are scaled pointer arithmetic over T, much like *T, but they
// are plain integers to the GC. This makes them safe to store inside
// pointer-free arena memory, at the cost of the caller being responsible for
// keeping the real allocation alive for as long as any Addr into it is used.
type Addr[T any] int

// AddrOf returns the address of p.
func AddrOf[T any](p *T) Addr[T] {
	return Addr[T](uintptr(unsafe.Pointer(p)))
}

// EndOf returns the address immediately past the last element of s.
func EndOf[T any](s []T) Addr[T] {
	return AddrOf(unsafe.SliceData(s)).Add(len(s))
}

// AssertValid converts this address back into a pointer.
//
// The caller must ensure the address still refers to live, correctly typed
// memory; no validation is performed.
func (a Addr[T]) AssertValid() *T {
	return (*T)(unsafe.Pointer(uintptr(a)))
}

// Add returns the address n elements of T past a.
func (a Addr[T]) Add(n int) Addr[T] {
	return a + Addr[T](n*layout.Size[T]())
}

// ByteAdd returns the address n bytes past a.
func (a Addr[T]) ByteAdd(n int) Addr[T] {
	return a + Addr[T](n)
}

// Sub returns the number of Ts between a and b.
func (a Addr[T]) Sub(b Addr[T]) int {
	return int(a-b) / layout.Size[T]()
}

// Padding returns the number of bytes needed to round a up to align.
func (a Addr[T]) Padding(align int) int {
	return layout.Padding(int(a), align)
}

// RoundUpTo rounds a up to the given power-of-two alignment.
func (a Addr[T]) RoundUpTo(align int) Addr[T] {
	return Addr[T](layout.RoundUp(int(a), align))
}

// SignBit returns the value of a's most significant bit.
func (a Addr[T]) SignBit() bool {
	return uint64(a)>>63 != 0
}

// SignBitMask returns all-ones if the sign bit is set, all-zeros otherwise.
func (a Addr[T]) SignBitMask() Addr[T] {
	return Addr[T](int64(a) >> 63)
}

// ClearSignBit clears a's most significant bit.
func (a Addr[T]) ClearSignBit() Addr[T] {
	return a &^ (Addr[T](1) << 63)
}

// Format implements fmt.Formatter, printing the address in hexadecimal.
func (a Addr[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'x':
		_, _ = fmt.Fprintf(s, "%x", uintptr(a))
	default:
		_, _ = fmt.Fprintf(s, "%#x", uintptr(a))
	}
}
