// Package decorator adds behaviour to a function by wrapping it in another
// function with the same signature.
package decorator

import "strings"

// Uppercase returns a function that calls fn and upper-cases its result.
func Uppercase[A any](fn func(A) string) func(A) string {
	return func(arg A) string {
		return strings.ToUpper(fn(arg))
	}
}

// Wrap runs before and after around fn. Either hook may be nil.
func Wrap[A, R any](fn func(A) R, before func(A), after func(A, R)) func(A) R {
	return func(arg A) R {
		if before != nil {
			before(arg)
		}
		result := fn(arg)
		if after != nil {
			after(arg, result)
		}
		return result
	}
}

func Greet(name string) string {
	return "Hello, " + name
}

// LoudGreet is Greet decorated with Uppercase.
var LoudGreet = Uppercase(Greet)
