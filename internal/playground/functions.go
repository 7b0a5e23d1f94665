// Package playground holds the functions the tour walks through, from an
// impure sum to producers composed with Bind.
package playground

import (
	"fmt"
	"io"

	"github.com/on-the-ground/purify_go/effects"
)

// SumPure only computes.
func SumPure(x, y int) int {
	return x + y
}

// SumWithSideEffect computes the same sum but also writes to w,
// which its signature does not admit.
func SumWithSideEffect(w io.Writer, x, y int) int {
	fmt.Fprintln(w, "I'm a side effect")
	return x + y
}

// Sum describes the addition instead of logging it.
func Sum(x, y int) effects.Logging[int] {
	return effects.New(effects.Infof("%d + %d", x, y), x+y)
}

// Neg describes the negation of x.
func Neg(x int) effects.Logging[int] {
	return effects.New(effects.Warnf("Neg %d", x), -x)
}
