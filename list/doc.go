// Package list is a second name for the growable array in package array.
//
// List[T] is the same type as array.Array[T]: every method, error and
// invariant documented there applies unchanged. Use whichever name reads
// better at the call site; values convert freely between the two.
//
//	l := list.New[string](8, nil)
//	l.Append("a")
//	var a *array.Array[string] = l
package list
