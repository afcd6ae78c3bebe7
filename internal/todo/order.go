package todo

import (
	"math"
	"sort"
)

// Order returns rows with numeric ids first, ascending, followed by rows
// whose id does not parse, in their original relative order. Rows sharing
// a numeric id keep their original relative order too.
func Order(rows []Row) []Row {
	numeric := make([]Row, 0, len(rows))
	var other []Row
	for _, r := range rows {
		if _, ok := r.NumericID(); ok {
			numeric = append(numeric, r)
		} else {
			other = append(other, r)
		}
	}
	sort.SliceStable(numeric, func(i, j int) bool {
		a, _ := numeric[i].NumericID()
		b, _ := numeric[j].NumericID()
		return a < b
	})
	return append(numeric, other...)
}

// NextID returns one more than the largest numeric id, or 1 when there is
// none. Unparseable ids are skipped. Ids saturate at math.MaxInt: once a row
// holds it, NextID returns math.MaxInt and never a smaller id.
func NextID(rows []Row) int {
	next := 1
	for _, r := range rows {
		n, ok := r.NumericID()
		if !ok {
			continue
		}
		if n == math.MaxInt {
			return math.MaxInt
		}
		if n+1 > next {
			next = n + 1
		}
	}
	return next
}
