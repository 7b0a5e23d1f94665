package purefn_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/purify_go/effects"
	"github.com/on-the-ground/purify_go/purefn"
)

// fibLogged describes every addition it performs.
func fibLogged(n int) effects.Logging[int] {
	if n <= 1 {
		return effects.Pure(n)
	}
	return effects.Bind(fibLogged(n-1), func(a int) effects.Logging[int] {
		return effects.Bind(fibLogged(n-2), func(b int) effects.Logging[int] {
			return effects.New(effects.Debugf("%d + %d", a, b), a+b)
		})
	})
}

func BenchmarkNaiveFibLogged16(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = fibLogged(16)
	}
}

func BenchmarkTableizedFibLogged16(b *testing.B) {
	for _, size := range []uint32{4, 32} {
		b.Run(fmt.Sprintf("TrieSize_%d", size), func(b *testing.B) {
			var fib func(int) effects.Logging[int]
			fib = purefn.TableizeI1O1(func(n int) effects.Logging[int] {
				if n <= 1 {
					return effects.Pure(n)
				}
				return effects.Bind(fib(n-1), func(a int) effects.Logging[int] {
					return effects.Bind(fib(n-2), func(c int) effects.Logging[int] {
						return effects.New(effects.Debugf("%d + %d", a, c), a+c)
					})
				})
			}, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = fib(16)
			}
		})
	}
}

func BenchmarkCachedSum(b *testing.B) {
	sum, closeFn, err := purefn.CachedI2O1(func(x, y int) effects.Logging[int] {
		return effects.New(effects.Infof("%d + %d", x, y), x+y)
	}, 1024)
	if err != nil {
		b.Fatal(err)
	}
	defer closeFn()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sum(i%32, 5)
	}
}
