// Package lazylist provides lazily evaluated lists of ints.
//
// Every node evaluates its thunk at most once, so lists backed by a
// stateful source (see Generate) can be inspected repeatedly without
// advancing the source.
package lazylist

type evaluatedList struct {
	item     int
	nextEval evalFunc
}

type evalFunc func() *evaluatedList

type lazyList struct {
	thunk evalFunc
	done  bool
	value *evaluatedList
	rest  *lazyList
}

func newLazyList(list evalFunc) *lazyList {
	return &lazyList{
		thunk: list,
	}
}

// eval returns the evaluated node, nil for the empty list.
func (l *lazyList) eval() *evaluatedList {
	if !l.done {
		l.value = l.thunk()
		l.done = true
		l.thunk = nil
	}
	return l.value
}

func rangeFunc(n int) *lazyList {
	return rangeFromTo(0, n)
}

func rangeFromTo(f, t int) *lazyList {
	res := empty()
	for i := t - 1; i >= f; i-- {
		res = res.cons(i)
	}
	return res
}

func sliceToLazyList(s []int) *lazyList {
	res := empty()
	for i := len(s) - 1; i >= 0; i-- {
		res = res.cons(s[i])
	}
	return res
}

func generate(next func() int) *lazyList {
	return newLazyList(func() *evaluatedList {
		item := next()
		return &evaluatedList{
			item:     item,
			nextEval: generate(next).eval,
		}
	})
}

func empty() *lazyList {
	return newLazyList(func() *evaluatedList {
		return nil
	})
}

func (l *lazyList) isEmpty() bool {
	return l.eval() == nil
}

func (l *lazyList) cons(item int) *lazyList {
	return newLazyList(func() *evaluatedList {
		return &evaluatedList{
			item:     item,
			nextEval: l.eval,
		}
	})
}

func (l *lazyList) head() int {
	if l.isEmpty() {
		return 0
	}
	return l.eval().item
}

func (l *lazyList) tail() *lazyList {
	if l.isEmpty() {
		return l
	}
	if l.rest == nil {
		l.rest = newLazyList(l.eval().nextEval)
	}
	return l.rest
}

func (l *lazyList) reduceNItem(n, acc int, f func(a, b int) int) int {
	for cur := l; n != 0 && !cur.isEmpty(); n-- {
		acc = f(acc, cur.head())
		cur = cur.tail()
	}
	return acc
}

func (l *lazyList) reduceAllItem(acc int, f func(a, b int) int) int {
	return l.reduceNItem(-1, acc, f)
}

func (l *lazyList) reduceNList(n int, acc []int, f func(a []int, b int) []int) []int {
	for cur := l; n != 0 && !cur.isEmpty(); n-- {
		acc = f(acc, cur.head())
		cur = cur.tail()
	}
	return acc
}

func (l *lazyList) reduceAllList(acc []int, f func(a []int, b int) []int) []int {
	return l.reduceNList(-1, acc, f)
}

func (l *lazyList) takeN(n int) []int {
	return l.reduceNList(n, []int{}, func(a []int, b int) []int {
		return append(a, b)
	})
}

func (l *lazyList) takeAll() []int {
	return l.takeN(-1)
}

// filterFunc skips rejected items only when the resulting node is
// evaluated. An infinite list with no accepted item never returns.
func (l *lazyList) filterFunc(f func(a int) bool) *lazyList {
	return newLazyList(func() *evaluatedList {
		cur := l
		for !cur.isEmpty() && !f(cur.head()) {
			cur = cur.tail()
		}
		if cur.isEmpty() {
			return nil
		}
		return &evaluatedList{
			item: cur.head(),
			nextEval: func() *evaluatedList {
				return cur.tail().filterFunc(f).eval()
			},
		}
	})
}

func (l *lazyList) mapFunc(f func(a int) int) *lazyList {
	return newLazyList(func() *evaluatedList {
		if l.isEmpty() {
			return nil
		}
		return &evaluatedList{
			item: f(l.head()),
			nextEval: func() *evaluatedList {
				return l.tail().mapFunc(f).eval()
			},
		}
	})
}
