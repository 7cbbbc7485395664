// Package navigator tracks a selection over items laid out column-major in
// one or two columns.
//
// Items fill column 0 top to bottom, then column 1. With n items and c
// columns, each column holds midpoint = ceil(n/c) rows; the second column
// may be shorter. Up and Down wrap within the current column, Right and Left
// move between the two columns at the same row.
//
// Nothing here returns an error. Moves that have nowhere to go are ignored
// and indexes are clamped, so input arriving while the item count changes
// never leaves the selection out of range.
package navigator

import "github.com/muurk/vimterm/pkg/input"

// Navigator holds the selection state. It is not safe for concurrent use.
type Navigator struct {
	selectedIndex  int
	selectedColumn int
	itemCount      int
	columnsCount   int
}

// Option configures a Navigator at construction.
type Option func(*Navigator)

// WithSelection sets the initial index and column.
func WithSelection(index, column int) Option {
	return func(n *Navigator) {
		n.selectedIndex = index
		n.selectedColumn = column
	}
}

// New creates a navigator over itemCount items arranged in columnsCount
// columns. A columnsCount below 1 is treated as 1. Only two columns are
// navigable; larger counts shrink the column height but Right still stops at
// the second column.
func New(itemCount, columnsCount int, opts ...Option) *Navigator {
	if itemCount < 0 {
		itemCount = 0
	}
	if columnsCount < 1 {
		columnsCount = 1
	}
	n := &Navigator{
		itemCount:    itemCount,
		columnsCount: columnsCount,
	}
	for _, opt := range opts {
		opt(n)
	}

	n.selectedIndex = clamp(n.selectedIndex, 0, max(itemCount-1, 0))
	n.selectedColumn = clamp(n.selectedColumn, 0, 1)
	return n
}

// SelectedIndex returns the selected item index.
func (n *Navigator) SelectedIndex() int { return n.selectedIndex }

// SelectedColumn returns the selected column, 0 or 1.
func (n *Navigator) SelectedColumn() int { return n.selectedColumn }

// ItemCount returns the number of items.
func (n *Navigator) ItemCount() int { return n.itemCount }

// ColumnsCount returns the configured column count.
func (n *Navigator) ColumnsCount() int { return n.columnsCount }

// Midpoint returns the number of rows in the first column.
func (n *Navigator) Midpoint() int {
	return (n.itemCount + n.columnsCount - 1) / n.columnsCount
}

// Position returns the row and column item i is drawn at.
func (n *Navigator) Position(i int) (row, column int) {
	mid := n.Midpoint()
	if mid == 0 {
		return 0, 0
	}
	return i % mid, i / mid
}

// Navigate applies a directional event. Other events are ignored.
func (n *Navigator) Navigate(ev input.Event) {
	if d, ok := ev.Direction(); ok {
		n.Move(d)
	}
}

// Move moves the selection one step in d.
func (n *Navigator) Move(d input.Direction) {
	if n.itemCount == 0 {
		return
	}

	midpoint := n.Midpoint()
	switch d {
	case input.Up:
		n.moveUp(midpoint)
	case input.Down:
		n.moveDown(midpoint)
	case input.Right:
		n.moveRight(midpoint)
	case input.Left:
		n.moveLeft(midpoint)
	}
	// An initial selection in an empty second column can wrap past the end.
	n.selectedIndex = clamp(n.selectedIndex, 0, n.itemCount-1)
}

// bounds returns the first index of the current column and one past its
// last index.
func (n *Navigator) bounds(midpoint int) (offset, maxIndex int) {
	offset = n.selectedColumn * midpoint
	maxIndex = midpoint
	if n.selectedColumn != 0 {
		maxIndex = n.itemCount
	}
	return offset, maxIndex
}

// moveUp wraps from the top row to the bottom one. A short final column
// clamps to its last item.
func (n *Navigator) moveUp(midpoint int) {
	offset, maxIndex := n.bounds(midpoint)
	n.selectedIndex = mod(n.selectedIndex-1-offset+midpoint, midpoint) + offset
	if n.selectedIndex >= maxIndex {
		n.selectedIndex = maxIndex - 1
	}
}

// moveDown wraps from the bottom row, or past the end of a short column, to
// the top row.
func (n *Navigator) moveDown(midpoint int) {
	offset, maxIndex := n.bounds(midpoint)
	n.selectedIndex = mod(n.selectedIndex+1-offset, midpoint) + offset
	if n.selectedIndex >= maxIndex {
		n.selectedIndex = offset
	}
}

func (n *Navigator) moveRight(midpoint int) {
	if n.selectedColumn != 0 {
		return
	}
	target := n.selectedIndex + midpoint
	if target >= n.itemCount {
		return
	}
	n.selectedColumn = 1
	n.selectedIndex = target
}

func (n *Navigator) moveLeft(midpoint int) {
	if n.selectedColumn != 1 {
		return
	}
	n.selectedColumn = 0
	n.selectedIndex = max(n.selectedIndex-midpoint, 0)
}

// UpdateItemCount replaces the item count, clamps the selection into range
// and resets the column to 0.
func (n *Navigator) UpdateItemCount(count int) {
	if count < 0 {
		count = 0
	}
	n.itemCount = count
	if n.selectedIndex >= count {
		n.selectedIndex = max(count-1, 0)
	}
	n.selectedColumn = 0
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
