package num

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzBits       = fuzzDefaultBits
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "num.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "num.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.IntVar(&fuzzBits, "num.fuzzbits", fuzzBits, "Maximum operand size in bits")
	flag.Var(&ops, "num.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("max bits:  ", fuzzBits)
	log.Println("integer sz:", intSize)

	// Int never starts a goroutine of its own; anything left running after
	// the tests is a leak.
	goleak.VerifyTestMain(m)
}

var (
	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
)

func bigI64(i int64) *big.Int { return new(big.Int).SetInt64(i) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(fmt.Errorf("num: big string %q invalid", s))
	}
	return v
}

// ints parses a literal with spaces stripped, so long test values can be
// grouped for readability.
func ints(s string) Int {
	s = strings.Replace(s, " ", "", -1)
	out, err := IntFromString(s)
	if err != nil {
		panic(err)
	}
	return out
}

var i64 = IntFrom64

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigInt returns a signed value with a uniformly chosen bit length up
// to maxBits, so small and large operands turn up equally often.
func randomBigInt(rng *rand.Rand, maxBits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	bits := rng.Intn(maxBits+1) - 1 // +1 for "0 bits"
	if bits < 0 {
		return v // "-1 bits" == "0"
	}

	limit := new(big.Int).Lsh(big1, uint(bits))
	v.Rand(rng, limit)
	v.SetBit(v, bits, 1)
	if rng.Intn(2) == 1 {
		v.Neg(v)
	}
	return v
}
