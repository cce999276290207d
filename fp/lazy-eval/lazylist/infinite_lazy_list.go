package lazylist

// InfiniteLazyList is a lazy list without an end. Only the N-bounded
// operations are offered. Tail, Filter and Map return a new list.
type InfiniteLazyList interface {
	Head() int
	Tail() InfiniteLazyList
	ReduceNItem(int, int, func(int, int) int) int
	ReduceNList(int, []int, func([]int, int) []int) []int
	TakeN(int) []int
	Filter(func(int) bool) InfiniteLazyList
	Map(func(int) int) InfiniteLazyList
}

type infiniteLazyList struct {
	l *lazyList
}

var _ InfiniteLazyList = &infiniteLazyList{}

// Generate returns a list whose items are the successive results of
// next. next is called once per item, in order, when that item is first
// needed.
func Generate(next func() int) InfiniteLazyList {
	return &infiniteLazyList{l: generate(next)}
}

func (il *infiniteLazyList) Head() int {
	return il.l.head()
}

func (il *infiniteLazyList) Tail() InfiniteLazyList {
	return &infiniteLazyList{l: il.l.tail()}
}

func (il *infiniteLazyList) ReduceNItem(n int, acc int, f func(int, int) int) int {
	if n < 0 {
		return acc
	}
	return il.l.reduceNItem(n, acc, f)
}

func (il *infiniteLazyList) ReduceNList(n int, acc []int, f func([]int, int) []int) []int {
	if n < 0 {
		return acc
	}
	return il.l.reduceNList(n, acc, f)
}

func (il *infiniteLazyList) TakeN(n int) []int {
	if n < 0 {
		return []int{}
	}
	return il.l.takeN(n)
}

func (il *infiniteLazyList) Filter(f func(int) bool) InfiniteLazyList {
	return &infiniteLazyList{l: il.l.filterFunc(f)}
}

func (il *infiniteLazyList) Map(f func(int) int) InfiniteLazyList {
	return &infiniteLazyList{l: il.l.mapFunc(f)}
}
