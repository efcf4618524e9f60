// Package algebra implements the small dense linear-algebra layer the
// editor is built on: fixed-arity vectors with 2, 3 or 4 components and
// a resizable matrix, both generic over a numeric element type.
//
// Arithmetic here is pure: every operation returns a fresh value and
// never mutates its receiver. Dimension mismatches and out-of-range
// indices are programming errors, not runtime conditions, and panic
// with a descriptive message (the same contract Go's own slices use).
package algebra

import "fmt"

// Number constrains the element types the algebra works over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec2 is a fixed two-component vector.
type Vec2[T Number] struct {
	X, Y T
}

// Vec3 is a fixed three-component vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

// Vec4 is a fixed four-component vector.
type Vec4[T Number] struct {
	X, Y, Z, W T
}

// Add returns the component-wise sum v + u.
func (v Vec2[T]) Add(u Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + u.X, v.Y + u.Y}
}

// Sub returns the component-wise difference v - u.
func (v Vec2[T]) Sub(u Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - u.X, v.Y - u.Y}
}

// Scale returns v with every component multiplied by k.
func (v Vec2[T]) Scale(k T) Vec2[T] {
	return Vec2[T]{v.X * k, v.Y * k}
}

// Dot returns the dot product v · u.
func (v Vec2[T]) Dot(u Vec2[T]) T {
	return v.X*u.X + v.Y*u.Y
}

// Len returns the component count, always 2.
func (v Vec2[T]) Len() int { return 2 }

// At returns the component at index i. Panics if i is not 0 or 1.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("algebra: Vec2 index %d out of range [0,2)", i))
}

// Add returns the component-wise sum v + u.
func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the component-wise difference v - u.
func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Scale returns v with every component multiplied by k.
func (v Vec3[T]) Scale(k T) Vec3[T] {
	return Vec3[T]{v.X * k, v.Y * k, v.Z * k}
}

// Dot returns the dot product v · u.
func (v Vec3[T]) Dot(u Vec3[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Len returns the component count, always 3.
func (v Vec3[T]) Len() int { return 3 }

// At returns the component at index i. Panics if i is outside [0,3).
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("algebra: Vec3 index %d out of range [0,3)", i))
}

// Add returns the component-wise sum v + u.
func (v Vec4[T]) Add(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + u.X, v.Y + u.Y, v.Z + u.Z, v.W + u.W}
}

// Sub returns the component-wise difference v - u.
func (v Vec4[T]) Sub(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - u.X, v.Y - u.Y, v.Z - u.Z, v.W - u.W}
}

// Scale returns v with every component multiplied by k.
func (v Vec4[T]) Scale(k T) Vec4[T] {
	return Vec4[T]{v.X * k, v.Y * k, v.Z * k, v.W * k}
}

// Dot returns the dot product v · u.
func (v Vec4[T]) Dot(u Vec4[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

// Len returns the component count, always 4.
func (v Vec4[T]) Len() int { return 4 }

// At returns the component at index i. Panics if i is outside [0,4).
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("algebra: Vec4 index %d out of range [0,4)", i))
}
