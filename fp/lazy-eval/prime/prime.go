// Package prime finds primes by trial division: Eratosthenes returns
// the primes up to a bound, and NewPrimeIterator yields primes one at a
// time without end.
package prime

import "math"

// IsPrime reports whether num has no divisor in [2, round(sqrt(num))].
func IsPrime(num int) bool {
	return num >= 2 && !hasProperDivisor(num, divisorLimit(num))
}

// divisorLimit is the exclusive upper end of the trial divisors for x.
func divisorLimit(x int) int {
	return int(math.Round(math.Sqrt(float64(x)) + 1))
}

// hasProperDivisor tries every i in [2, limit) against num. A divisor
// whose quotient is 1 is num itself and does not count.
func hasProperDivisor(num, limit int) bool {
	for i := 2; i < limit; i++ {
		if isFactor(num, i) && num/i != 1 {
			return true
		}
	}
	return false
}

func isFactor(num, potential int) bool {
	return num%potential == 0
}
