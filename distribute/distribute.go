// Package distribute orders a multiset so that equal values are spread as
// evenly as possible over the output.
//
// Every distinct value v with count c out of n items is given a period n/c
// and a virtual time starting at half its period. The value with the lowest
// virtual time is emitted next and its virtual time advances by its period,
// as in stride scheduling. Ties go to the more frequent value.
package distribute

// Count pairs a value with the number of times it occurs.
type Count[T comparable] struct {
	N     int
	Value T
}

// scheduler entry
type item[T comparable] struct {
	value  T
	count  int
	period float64
	vtime  float64
}

// queue kept sorted by descending virtual time, so the next item to emit is
// always at the end
type queue[T comparable] []item[T]

// insert it by walking from the back toward the front. an item moves in front
// of its neighbour if it is due later, or due at the same time with a period
// no longer than the neighbour's.
func (q *queue[T]) put(it item[T]) {
	s := append(*q, it)
	for i := len(s) - 1; i > 0; i-- {
		if s[i].vtime > s[i-1].vtime || (s[i].vtime == s[i-1].vtime && s[i].period <= s[i-1].period) {
			s[i], s[i-1] = s[i-1], s[i]
		}
	}
	*q = s
}

// remove and return the item with the lowest virtual time
func (q *queue[T]) pop() (item[T], bool) {
	s := *q
	if len(s) == 0 {
		return item[T]{}, false
	}
	it := s[len(s)-1]
	*q = s[:len(s)-1]
	return it, true
}

// Distribute returns every value repeated by its count, interleaved by virtual
// time. Counts <= 0 are ignored.
func Distribute[T comparable](counts []Count[T]) []T {
	total := 0
	for _, c := range counts {
		if c.N > 0 {
			total += c.N
		}
	}

	q := make(queue[T], 0, len(counts))
	for _, c := range counts {
		if c.N > 0 {
			period := float64(total) / float64(c.N)
			q.put(item[T]{value: c.Value, count: c.N, period: period, vtime: period / 2})
		}
	}

	list := make([]T, 0, total)
	for {
		it, ok := q.pop()
		if !ok {
			break
		}
		list = append(list, it.value)
		it.count--
		it.vtime += it.period
		if it.count > 0 {
			q.put(it)
		}
	}
	return list
}

// Tally counts the values of items in order of first appearance.
func Tally[T comparable](items []T) []Count[T] {
	index := make(map[T]int)
	var counts []Count[T]
	for _, v := range items {
		if i, ok := index[v]; ok {
			counts[i].N++
		} else {
			index[v] = len(counts)
			counts = append(counts, Count[T]{N: 1, Value: v})
		}
	}
	return counts
}

// Schedule reorders items so that repeats are spread evenly. The result holds
// exactly the same multiset.
func Schedule[T comparable](items []T) []T {
	return Distribute(Tally(items))
}
