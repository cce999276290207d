package prime

import (
	"strconv"
	"strings"

	"github.com/KumKeeHyun/eratosthenes/fp/lazy-eval/lazylist"
	"github.com/willf/bitset"
)

// Result is the outcome of Find. Err is set when the input was not an
// integer; Primes is set otherwise, empty when the bound is below 2.
type Result struct {
	Primes []int
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Eratosthenes returns, in ascending order, the primes p with 2 <= p <= n.
// Bounds below 2 give an empty slice.
func Eratosthenes(n int, opts ...Option) []int {
	o := newOptions(opts)
	if n < 2 {
		return []int{}
	}

	nums := lazylist.RangeFromTo(2, n+1)
	nonPrimes := bitset.New(uint(n - 1))
	nums.ReduceAllItem(0, func(j, num int) int {
		if hasProperDivisor(num, o.limit(j, num)) {
			nonPrimes.Set(uint(j))
		}
		return j + 1
	})

	return nums.Filter(func(num int) bool {
		return !nonPrimes.Test(uint(num - 2))
	}).TakeAll()
}

// ParseInput reads a bound from s. Surrounding whitespace, a leading
// sign and single underscores between digits ("1_000") are accepted.
func ParseInput(s string) (int, error) {
	digits, ok := stripSeparators(strings.TrimSpace(s))
	if !ok {
		return 0, &InputError{Input: s, Err: strconv.ErrSyntax}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &InputError{Input: s, Err: err}
	}
	return n, nil
}

// stripSeparators drops underscores that sit between two digits. Any
// other underscore makes s invalid.
func stripSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			sb.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return sb.String(), true
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// Find parses input as the bound and runs Eratosthenes on it.
func Find(input string, opts ...Option) Result {
	n, err := ParseInput(input)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Primes: Eratosthenes(n, opts...)}
}
