// Package position maintains the dense, zero-based position index shared by
// lists within a board and tasks within a list.
//
// A container's positions are always {0, 1, ..., n-1}: creation appends at
// the end and reorders assign every member its index in a full id sequence.
package position

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicate indicates an id appears more than once in a requested order
	ErrDuplicate = errors.New("duplicate id in order")

	// ErrMissing indicates a current member was omitted from a requested order
	ErrMissing = errors.New("order omits existing members")

	// ErrUnexpected indicates a requested order names ids that are not members
	ErrUnexpected = errors.New("order names non-members")
)

// Placement is the position assigned to one member.
type Placement struct {
	ID       int64
	Position int
}

// Next returns the position for a new member appended to a container with
// count existing members.
func Next(count int) int {
	if count < 0 {
		return 0
	}
	return count
}

// Assign maps every id to its index in ids.
func Assign(ids []int64) []Placement {
	placements := make([]Placement, len(ids))
	for i, id := range ids {
		placements[i] = Placement{ID: id, Position: i}
	}
	return placements
}

// CheckPermutation verifies requested is exactly the current membership in
// some order.
func CheckPermutation(current, requested []int64) error {
	if err := CheckCovers(current, requested); err != nil {
		return err
	}
	if extra := Difference(requested, current); len(extra) > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpected, extra)
	}
	return nil
}

// CheckCovers verifies requested has no duplicates and contains every
// current member. Additional ids are allowed.
func CheckCovers(current, requested []int64) error {
	seen := make(map[int64]struct{}, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicate, id)
		}
		seen[id] = struct{}{}
	}
	if missing := Difference(current, requested); len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissing, missing)
	}
	return nil
}

// Difference returns the ids of a that are not in b, in a's order.
func Difference(a, b []int64) []int64 {
	in := make(map[int64]struct{}, len(b))
	for _, id := range b {
		in[id] = struct{}{}
	}
	var out []int64
	for _, id := range a {
		if _, ok := in[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// IsDense reports whether positions are exactly {0..n-1} in any order.
func IsDense(positions []int) bool {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	for i, p := range sorted {
		if p != i {
			return false
		}
	}
	return true
}

// Insert returns ids with id placed at index. Any existing occurrence of id
// is removed first; index is clamped to [0, len].
func Insert(ids []int64, id int64, index int) []int64 {
	out := make([]int64, 0, len(ids)+1)
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	if index < 0 {
		index = 0
	}
	if index > len(out) {
		index = len(out)
	}
	out = append(out, 0)
	copy(out[index+1:], out[index:])
	out[index] = id
	return out
}

// Swap returns a copy of ids with the member at i moved by delta (-1 or +1),
// and the member's new index. ok is false when the move would leave the range.
func Swap(ids []int64, i, delta int) (out []int64, newIndex int, ok bool) {
	j := i + delta
	if i < 0 || i >= len(ids) || j < 0 || j >= len(ids) {
		return ids, i, false
	}
	out = append([]int64(nil), ids...)
	out[i], out[j] = out[j], out[i]
	return out, j, true
}
