package wr

import "testing"

func BenchmarkSolve(b *testing.B) {
	for _, scheme := range Schemes {
		b.Run(scheme.String()+"/points=10", benchSolveN(scheme, 10))
		b.Run(scheme.String()+"/points=40", benchSolveN(scheme, 40))
	}
}

func BenchmarkAssemble(b *testing.B) {
	b.Run("basis=8", benchAssembleN(8))
	b.Run("basis=32", benchAssembleN(32))
	b.Run("basis=128", benchAssembleN(128))
}

func benchSolveN(scheme Scheme, n int) func(b *testing.B) {
	return func(b *testing.B) {
		p := problem(b, 0, 1, n, 0, 1, "1 + x", "0", "1", "sin(pi*x)")
		var s Solver

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := s.Solve(p, scheme); err != nil {
				b.Error(err)
			}
		}
	}
}

func benchAssembleN(n int) func(b *testing.B) {
	return func(b *testing.B) {
		k := &RitzKernel{Op: mustOperator(b, "2", "0", "0", "50")} // constant conductivity and source
		basis := SineBasis(Domain{A: 0, B: 1}, n)
		var as Assembler

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := as.Integral(k, basis, basis); err != nil {
				b.Error(err)
			}
		}
	}
}
