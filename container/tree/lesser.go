package tree

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Lesser compares two keys
type Lesser[K any] interface {
	// Less returns
	//  a negative number if a < b
	//  0 if a == b
	//  a positive number if a > b
	Less(a, b K) int
}

// LesserFunc allows a function to act as a Lesser
type LesserFunc[K any] func(a, b K) int

// Less implementation of Lesser for LesserFunc
func (f LesserFunc[K]) Less(a, b K) int {
	return f(a, b)
}

// OrderedLesser implementation of the Lesser interface for
// any type that supports the < and > operators
type OrderedLesser[K constraints.Ordered] struct{}

// Less returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func (OrderedLesser[K]) Less(a, b K) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	} else {
		return 0
	}
}

// kindLesser orders keys by their underlying kind. It is the
// fallback used when a tree is created without a Lesser
type kindLesser[K any] struct{}

func (kindLesser[K]) Less(a, b K) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return OrderedLesser[int64]{}.Less(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return OrderedLesser[uint64]{}.Less(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return OrderedLesser[float64]{}.Less(va.Float(), vb.Float())
	case reflect.String:
		return OrderedLesser[string]{}.Less(va.String(), vb.String())
	default:
		panic(fmt.Sprintf("tree: no default ordering for keys of type %T", a))
	}
}
