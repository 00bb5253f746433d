/*
Copyright 2011-2025 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package transform holds the pre/post value transforms applied around
// the Elias codecs: the signed-to-natural zig-zag bijection and a
// constant additive offset. Both follow the Forward/Inverse naming
// kanzi-go uses for its own ByteTransform and IntTransform interfaces
// (see Definitions.go), even though these transforms operate in place
// on a numeric slice rather than reading one buffer and writing
// another.
package transform

// Integer is the element type a Codec[T] can be instantiated over:
// every signed and unsigned fixed-width integer type the core codec
// supports (spec.md §9, "Polymorphism over element width").
type Integer interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64
}

// ForwardNatural applies the signed-to-natural zig-zag bijection in
// place: positive x maps to 2x, non-positive x maps to -2x+1. This is
// the map a caller uses to push signed or zero-valued input into the
// strictly-positive domain the core codec requires. Arithmetic is done
// in int64; values outside its range wrap per spec.md §4.B's documented
// no-overflow-checking policy.
func ForwardNatural[T Integer](arr []T) {
	for i, x := range arr {
		v := int64(x)

		if v > 0 {
			arr[i] = T(2 * v)
		} else {
			arr[i] = T(-2*v + 1)
		}
	}
}

// InverseNatural undoes ForwardNatural in place: an even y maps back to
// y/2, an odd y maps back to -(y-1)/2.
func InverseNatural[T Integer](arr []T) {
	for i, y := range arr {
		v := int64(y)

		if v%2 == 0 {
			arr[i] = T(v / 2)
		} else {
			arr[i] = T(-(v - 1) / 2)
		}
	}
}

// ForwardOffset adds the constant k to every element in place.
func ForwardOffset[T Integer](arr []T, k int64) {
	for i, x := range arr {
		arr[i] = T(int64(x) + k)
	}
}

// InverseOffset subtracts the constant k from every element in place,
// undoing ForwardOffset.
func InverseOffset[T Integer](arr []T, k int64) {
	for i, y := range arr {
		arr[i] = T(int64(y) - k)
	}
}

// Clone returns a fresh copy of arr. The facade calls this before
// applying any in-place transform so the caller's buffer is never
// mutated (spec.md §4.B).
func Clone[T Integer](arr []T) []T {
	cp := make([]T, len(arr))
	copy(cp, arr)
	return cp
}
