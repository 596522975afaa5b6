package num

import (
	"fmt"
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    int
	BenchNumResult    Int
	BenchStringResult string
)

// benchSizes are operand sizes in bits.
var benchSizes = []uint{64, 256, 1024, 4096}

func benchOperands(bits uint) (Int, Int) {
	a := IntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big1, bits), big1))
	b := IntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big1, bits/2), bigI64(12345)))
	return a, b
}

func BenchmarkIntAdd(b *testing.B) {
	for _, bits := range benchSizes {
		x, y := benchOperands(bits)
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumResult = x.Add(y)
			}
		})
	}
}

func BenchmarkIntSub(b *testing.B) {
	for _, bits := range benchSizes {
		x, y := benchOperands(bits)
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumResult = y.Sub(x)
			}
		})
	}
}

func BenchmarkIntMul(b *testing.B) {
	for _, bits := range benchSizes {
		x, y := benchOperands(bits)
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumResult = x.Mul(y)
			}
		})
	}
}

func BenchmarkIntQuo(b *testing.B) {
	for _, bits := range benchSizes {
		x, y := benchOperands(bits)
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumResult = x.Quo(y)
			}
		})
	}
}

func BenchmarkIntRem(b *testing.B) {
	b.Run("word", func(b *testing.B) {
		x, _ := benchOperands(1024)
		y := IntFromU32(1000000007)
		for i := 0; i < b.N; i++ {
			BenchNumResult = x.Rem(y)
		}
	})
	b.Run("multi", func(b *testing.B) {
		x, y := benchOperands(1024)
		for i := 0; i < b.N; i++ {
			BenchNumResult = x.Rem(y)
		}
	})
}

func BenchmarkIntCmp(b *testing.B) {
	b.Run("equal", func(b *testing.B) {
		x, _ := benchOperands(1024)
		y := x.Clone()
		for i := 0; i < b.N; i++ {
			BenchIntResult = x.Cmp(y)
		}
	})
	b.Run("sign", func(b *testing.B) {
		x, _ := benchOperands(1024)
		y := x.Neg()
		for i := 0; i < b.N; i++ {
			BenchIntResult = x.Cmp(y)
		}
	})
}

func BenchmarkIntLsh(b *testing.B) {
	x, _ := benchOperands(1024)
	for _, sh := range []uint{1, 31, 32, 33, 500} {
		b.Run(fmt.Sprintf("%d", sh), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumResult = x.Lsh(sh)
			}
		})
	}
}

func BenchmarkIntRsh(b *testing.B) {
	x, _ := benchOperands(1024)
	for _, sh := range []uint{1, 31, 32, 33, 500} {
		b.Run(fmt.Sprintf("%d", sh), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumResult = x.Rsh(sh)
			}
		})
	}
}

func BenchmarkIntString(b *testing.B) {
	for _, bits := range benchSizes {
		x, _ := benchOperands(bits)
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = x.String()
			}
		})
	}
}

func BenchmarkIntFromString(b *testing.B) {
	for _, bits := range benchSizes {
		x, _ := benchOperands(bits)
		s := x.String()
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNumResult, _ = IntFromString(s)
			}
		})
	}
}

func BenchmarkIntAsBigInt(b *testing.B) {
	x, _ := benchOperands(1024)
	b.Run("alloc", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			BenchBigIntResult = x.AsBigInt()
		}
	})
	b.Run("into", func(b *testing.B) {
		var v big.Int
		for i := 0; i < b.N; i++ {
			x.IntoBigInt(&v)
		}
	})
}

func BenchmarkBigIntMul(b *testing.B) {
	for _, bits := range benchSizes {
		x, y := benchOperands(bits)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				dest.Mul(bx, by)
			}
		})
	}
}

func BenchmarkBigIntQuo(b *testing.B) {
	for _, bits := range benchSizes {
		x, y := benchOperands(bits)
		bx, by := x.AsBigInt(), y.AsBigInt()
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var dest big.Int
				dest.Quo(bx, by)
			}
		})
	}
}

func BenchmarkBigIntString(b *testing.B) {
	for _, bits := range benchSizes {
		x, _ := benchOperands(bits)
		bx := x.AsBigInt()
		b.Run(fmt.Sprintf("%d", bits), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = bx.String()
			}
		})
	}
}

func BenchmarkBigIntCmpEqual(b *testing.B) {
	x, _ := benchOperands(1024)
	v1, v2 := x.AsBigInt(), x.AsBigInt()
	for i := 0; i < b.N; i++ {
		BenchBoolResult = v1.Cmp(v2) == 0
	}
}
