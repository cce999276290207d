package prime

import "github.com/KumKeeHyun/eratosthenes/fp/lazy-eval/lazylist"

type Iterator interface {
	HasNext() bool
	Next() int
}

// primeIterator holds the primes confirmed so far in genNums; a probe
// sits at the end of genNums while it is tested.
type primeIterator struct {
	genNums []int
	probe   int
}

// NewPrimeIterator returns a generator whose first Next is 2. Separate
// iterators share nothing.
func NewPrimeIterator() Iterator {
	return &primeIterator{probe: 2}
}

func (pi *primeIterator) HasNext() bool {
	return true
}

func (pi *primeIterator) Next() int {
	for {
		n := pi.probe
		pi.genNums = append(pi.genNums, n)
		composite := hasProperDivisor(n, divisorLimit(n))
		if composite {
			pi.genNums = pi.genNums[:len(pi.genNums)-1]
		}
		pi.probe++
		if !composite {
			return n
		}
	}
}

// Take returns the next k values of it. k <= 0 gives an empty slice.
func Take(it Iterator, k int) []int {
	res := make([]int, 0, max(k, 0))
	for i := 0; i < k && it.HasNext(); i++ {
		res = append(res, it.Next())
	}
	return res
}

// List returns a lazy list over a fresh prime iterator.
func List() lazylist.InfiniteLazyList {
	return lazylist.Generate(NewPrimeIterator().Next)
}
