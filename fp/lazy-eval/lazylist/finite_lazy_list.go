package lazylist

// FiniteLazyList is a lazy list with a known end. TakeAll and the
// ReduceAll* operations walk it to that end.
//
// Cons, Tail, Filter and Map return a new list and leave the receiver
// as it was. The lists share evaluated nodes.
type FiniteLazyList interface {
	IsEmpty() bool
	Cons(int) FiniteLazyList
	Head() int
	Tail() FiniteLazyList
	ReduceNItem(int, int, func(int, int) int) int
	ReduceAllItem(int, func(int, int) int) int
	ReduceNList(int, []int, func([]int, int) []int) []int
	ReduceAllList([]int, func([]int, int) []int) []int
	TakeN(int) []int
	TakeAll() []int
	Filter(func(int) bool) FiniteLazyList
	Map(func(int) int) FiniteLazyList
}

type finiteLazyList struct {
	l *lazyList
}

var _ FiniteLazyList = &finiteLazyList{}

func Empty() FiniteLazyList {
	return &finiteLazyList{l: empty()}
}

// RangeFromTo returns the ints in [f, t).
func RangeFromTo(f, t int) FiniteLazyList {
	return &finiteLazyList{l: rangeFromTo(f, t)}
}

// Range returns the ints in [0, n).
func Range(n int) FiniteLazyList {
	return &finiteLazyList{l: rangeFunc(n)}
}

func SliceToLazyList(s []int) FiniteLazyList {
	return &finiteLazyList{l: sliceToLazyList(s)}
}

func (fl *finiteLazyList) IsEmpty() bool {
	return fl.l.isEmpty()
}

func (fl *finiteLazyList) Cons(item int) FiniteLazyList {
	return &finiteLazyList{l: fl.l.cons(item)}
}

func (fl *finiteLazyList) Head() int {
	return fl.l.head()
}

func (fl *finiteLazyList) Tail() FiniteLazyList {
	return &finiteLazyList{l: fl.l.tail()}
}

func (fl *finiteLazyList) ReduceNItem(n, acc int, f func(a, b int) int) int {
	return fl.l.reduceNItem(n, acc, f)
}

func (fl *finiteLazyList) ReduceAllItem(acc int, f func(a, b int) int) int {
	return fl.l.reduceAllItem(acc, f)
}

func (fl *finiteLazyList) ReduceNList(n int, acc []int, f func(a []int, b int) []int) []int {
	return fl.l.reduceNList(n, acc, f)
}

func (fl *finiteLazyList) ReduceAllList(acc []int, f func(a []int, b int) []int) []int {
	return fl.l.reduceAllList(acc, f)
}

func (fl *finiteLazyList) TakeN(n int) []int {
	return fl.l.takeN(n)
}

func (fl *finiteLazyList) TakeAll() []int {
	return fl.l.takeAll()
}

func (fl *finiteLazyList) Filter(f func(a int) bool) FiniteLazyList {
	return &finiteLazyList{l: fl.l.filterFunc(f)}
}

func (fl *finiteLazyList) Map(f func(a int) int) FiniteLazyList {
	return &finiteLazyList{l: fl.l.mapFunc(f)}
}
