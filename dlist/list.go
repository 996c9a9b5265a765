// SPDX-License-Identifier: MIT
// Package: apfabric/dlist
//
// list.go - List: an ordered, growable list of ints.
//
// Contract:
//   - New creates an empty list with a capacity hint (size 0 is valid;
//     growth is handled by Go's append and needs no manual realloc).
//   - AddNew(v) inserts v only if absent; returns false when v was
//     already present (matches ListAddNew's 0/1 return, inverted to bool).
//   - Add(v) always appends, returning the index v was stored at (matches
//     ListAdd's "return old size" semantics).
//   - Pop removes and returns the last value, or (0, false) on empty list.
//   - Change(origin, current) rewrites every occurrence of origin.
//   - SwapByPosValue finds value and swaps it into pos, returning the
//     original index of value, or -1 if value is absent or pos is out
//     of range.
//
// Complexity:
//   - AddNew/Change/SwapByPosValue: O(n) linear scan, matching the
//     original unsorted-array design (lists here are small: per-vertex
//     destination-partition counts and per-tile boundary counts are
//     bounded by fabric.MaxOut/MaxIn in practice).
//   - Add/Pop: amortized O(1).
package dlist

// List is an ordered, growable collection of ints with positional
// semantics. The zero value is an empty, usable list.
type List struct {
	values []int
}

// New returns an empty List with capacity pre-allocated for hint elements.
func New(hint int) *List {
	if hint < 0 {
		hint = 0
	}
	return &List{values: make([]int, 0, hint)}
}

// Len returns the number of elements currently stored.
func (l *List) Len() int { return len(l.values) }

// Values returns the underlying slice in insertion order. Callers must
// not retain it across further mutation of l.
func (l *List) Values() []int { return l.values }

// At returns the value stored at position i.
func (l *List) At(i int) int { return l.values[i] }

// AddNew inserts num if it is not already present. It returns true when
// num was newly inserted, false when it was already a member.
func (l *List) AddNew(num int) bool {
	for _, v := range l.values {
		if v == num {
			return false
		}
	}
	l.values = append(l.values, num)
	return true
}

// Add appends num unconditionally and returns the index it now occupies.
func (l *List) Add(num int) int {
	idx := len(l.values)
	l.values = append(l.values, num)
	return idx
}

// Pop removes and returns the last element. ok is false on an empty list.
func (l *List) Pop() (int, bool) {
	n := len(l.values)
	if n == 0 {
		return 0, false
	}
	v := l.values[n-1]
	l.values = l.values[:n-1]
	return v, true
}

// Change rewrites every occurrence of origin to current, returning true
// if at least one occurrence was found.
func (l *List) Change(origin, current int) bool {
	found := false
	for i, v := range l.values {
		if v == origin {
			l.values[i] = current
			found = true
		}
	}
	return found
}

// Copy replaces l's contents with a copy of src's.
func (l *List) Copy(src *List) {
	l.values = append(l.values[:0], src.values...)
}

// Clone returns an independent copy of l.
func (l *List) Clone() *List {
	c := New(len(l.values))
	c.values = append(c.values, l.values...)
	return c
}

// Empty discards all elements without releasing capacity.
func (l *List) Empty() {
	l.values = l.values[:0]
}

// SwapByPosValue locates value in l and swaps it with the element at
// pos, returning value's original index. It returns -1 if pos is out of
// range or value is not present; the list is left unmodified in that
// case.
func (l *List) SwapByPosValue(value, pos int) int {
	if pos < 0 || pos >= len(l.values) {
		return -1
	}
	for i, v := range l.values {
		if v == value {
			l.values[i] = l.values[pos]
			l.values[pos] = value
			return i
		}
	}
	return -1
}

// SwapByPosValue applies the same positional swap directly to a plain
// []int, for callers (tile state arrays) that are not backed by a List.
func SwapByPosValue(s []int, value, pos int) int {
	if pos < 0 || pos >= len(s) {
		return -1
	}
	for i, v := range s {
		if v == value {
			s[i] = s[pos]
			s[pos] = value
			return i
		}
	}
	return -1
}
