package prime

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEratosthenes(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{-5, []int{}},
		{0, []int{}},
		{1, []int{}},
		{2, []int{2}},
		{3, []int{2, 3}},
		{10, []int{2, 3, 5, 7}},
		{20, []int{2, 3, 5, 7, 11, 13, 17, 19}},
		{49, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}},
	}
	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.want, Eratosthenes(tt.n))
			assert.Equal(t, tt.want, Eratosthenes(tt.n, WithBound(BoundValue)))
		})
	}
}

func TestEratosthenesElementsArePrime(t *testing.T) {
	n := 2000
	got := Eratosthenes(n)
	for _, p := range got {
		assert.GreaterOrEqual(t, p, 2)
		assert.LessOrEqual(t, p, n)
		assert.True(t, isPrimeNaive(p), "p=%d", p)
	}

	count := 0
	for v := 2; v <= n; v++ {
		if isPrimeNaive(v) {
			count++
		}
	}
	assert.Len(t, got, count)
}

func TestEratosthenesIdempotent(t *testing.T) {
	assert.Equal(t, Eratosthenes(500), Eratosthenes(500))
}

func TestEratosthenesPrefix(t *testing.T) {
	larger := Eratosthenes(300)
	for n := 0; n <= 300; n += 17 {
		smaller := Eratosthenes(n)
		require.LessOrEqual(t, len(smaller), len(larger))
		assert.Equal(t, smaller, larger[:len(smaller)], "n=%d", n)
		if len(smaller) < len(larger) {
			assert.Greater(t, larger[len(smaller)], n)
		}
	}
}

func TestBoundsAgree(t *testing.T) {
	for n := 0; n <= 2000; n += 37 {
		assert.Equal(t, Eratosthenes(n, WithBound(BoundIndex)), Eratosthenes(n, WithBound(BoundValue)), "n=%d", n)
	}
}

func TestParseBound(t *testing.T) {
	b, err := ParseBound("")
	require.NoError(t, err)
	assert.Equal(t, BoundIndex, b)

	b, err = ParseBound(" Value ")
	require.NoError(t, err)
	assert.Equal(t, BoundValue, b)
	assert.Equal(t, "value", b.String())

	_, err = ParseBound("digits")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	res := Find("10")
	require.True(t, res.OK())
	assert.Equal(t, []int{2, 3, 5, 7}, res.Primes)

	res = Find(" 20\n")
	require.True(t, res.OK())
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19}, res.Primes)

	res = Find("-3")
	require.True(t, res.OK())
	assert.Equal(t, []int{}, res.Primes)
}

func TestParseInputSeparators(t *testing.T) {
	n, err := ParseInput("1_000")
	require.NoError(t, err)
	assert.Equal(t, 1000, n)

	n, err = ParseInput(" -1_2 ")
	require.NoError(t, err)
	assert.Equal(t, -12, n)

	res := Find("1_0")
	require.True(t, res.OK())
	assert.Equal(t, []int{2, 3, 5, 7}, res.Primes)
}

func TestErrNotIntegerSentinel(t *testing.T) {
	assert.Equal(t, "bound is not an integer", ErrNotInteger.Error())
	assert.Equal(t, NotIntegerMessage, (&InputError{Input: "x"}).Error())
}

func TestFindNotInteger(t *testing.T) {
	for _, in := range []string{"abc", "", "10.5", "1e3", "99999999999999999999999", "_10", "10_", "1__0", "+_1", "a_1"} {
		res := Find(in)
		assert.False(t, res.OK(), "input=%q", in)
		assert.Nil(t, res.Primes)
		assert.True(t, errors.Is(res.Err, ErrNotInteger))
		assert.EqualError(t, res.Err, "Please input a positive integer.")

		var inputErr *InputError
		require.True(t, errors.As(res.Err, &inputErr))
		assert.Equal(t, in, inputErr.Input)
		assert.True(t, errors.Is(res.Err, strconv.ErrSyntax) || errors.Is(res.Err, strconv.ErrRange))
	}
}

func BenchmarkEratosthenes(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Eratosthenes(10000)
	}
}
