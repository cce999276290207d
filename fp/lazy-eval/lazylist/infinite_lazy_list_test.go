package lazylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func naturals() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func TestGenerate(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Generate(naturals()).TakeN(5))
}

func TestGenerateCallsNextOncePerItem(t *testing.T) {
	calls := 0
	next := naturals()
	list := Generate(func() int {
		calls++
		return next()
	})

	assert.Equal(t, 1, list.Head())
	assert.Equal(t, 1, list.Head())
	assert.Equal(t, 1, calls)

	assert.Equal(t, []int{2, 3, 4}, list.Tail().TakeN(3))
	assert.Equal(t, 4, calls)
}

func TestGenerateTailKeepsReceiver(t *testing.T) {
	calls := 0
	next := naturals()
	list := Generate(func() int {
		calls++
		return next()
	})

	assert.Equal(t, []int{2, 3}, list.Tail().TakeN(2))
	assert.Equal(t, []int{1, 2, 3}, list.TakeN(3))
	assert.Equal(t, []int{2, 4}, list.Filter(func(a int) bool { return a%2 == 0 }).TakeN(2))
	assert.Equal(t, 4, calls)
}

func TestGenerateNegativeTake(t *testing.T) {
	list := Generate(naturals())

	assert.Equal(t, []int{}, list.TakeN(-1))
	assert.Equal(t, 7, list.ReduceNItem(-3, 7, func(a, b int) int { return a + b }))
}

func TestGenerateFilter(t *testing.T) {
	got := Generate(naturals()).Filter(func(a int) bool {
		return a%2 == 0
	}).TakeN(5)

	assert.Equal(t, []int{2, 4, 6, 8, 10}, got)
}

func TestGenerateMap(t *testing.T) {
	got := Generate(naturals()).Map(func(a int) int {
		return a + 10
	}).TakeN(5)

	assert.Equal(t, []int{11, 12, 13, 14, 15}, got)
}

func TestGenerateFilterMapReduce(t *testing.T) {
	got := Generate(naturals()).Filter(func(a int) bool {
		return a%2 == 0
	}).Map(func(a int) int {
		return a + 1
	}).ReduceNItem(5, 0, func(a, b int) int {
		return a + b
	})

	assert.Equal(t, 35, got)
}

func BenchmarkLazy(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	_ = Generate(naturals()).Map(func(i int) int {
		if i%100 != 0 {
			return i
		}
		return i * 100
	}).Map(func(i int) int {
		if i%3 == 0 {
			return i * 2
		}
		return i * 3
	}).TakeN(100000)
}
