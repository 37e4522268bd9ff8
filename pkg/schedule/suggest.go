// pkg/schedule/suggest.go

// Package schedule proposes start/finish times for open tasks by
// greedily packing fixed-length blocks into the free stretches of a day
// window. It is pure: it reads its inputs and holds no state.
package schedule

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Interval is a half-open time span [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Candidate is a task eligible for a suggested block.
type Candidate struct {
	ID       uuid.UUID
	Title    string
	Priority int // 1-5, higher packs earlier
	Order    int // tie-breaker: plan order
}

// Block is a proposed working slot for one task.
type Block struct {
	TaskID uuid.UUID
	Title  string
	Start  time.Time
	End    time.Time
}

// Pack assigns one block per candidate inside the window, skipping busy
// intervals. Higher-priority candidates are placed first; candidates
// that do not fit are left out. Suggested blocks never overlap each
// other, the busy intervals, or the window edges.
func Pack(window Interval, blockLen time.Duration, busy []Interval, tasks []Candidate) []Block {
	if blockLen <= 0 || !window.Start.Before(window.End) || len(tasks) == 0 {
		return nil
	}

	ordered := make([]Candidate, len(tasks))
	copy(ordered, tasks)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].Order < ordered[j].Order
	})

	free := freeIntervals(window, busy)

	var blocks []Block
	next := 0
	for _, gap := range free {
		cursor := gap.Start
		for next < len(ordered) && !cursor.Add(blockLen).After(gap.End) {
			c := ordered[next]
			blocks = append(blocks, Block{
				TaskID: c.ID,
				Title:  c.Title,
				Start:  cursor,
				End:    cursor.Add(blockLen),
			})
			cursor = cursor.Add(blockLen)
			next++
		}
		if next == len(ordered) {
			break
		}
	}
	return blocks
}

// freeIntervals subtracts the busy intervals from the window.
func freeIntervals(window Interval, busy []Interval) []Interval {
	clipped := make([]Interval, 0, len(busy))
	for _, b := range busy {
		if !b.Start.Before(b.End) {
			continue
		}
		if b.End.Before(window.Start) || b.Start.After(window.End) {
			continue
		}
		if b.Start.Before(window.Start) {
			b.Start = window.Start
		}
		if b.End.After(window.End) {
			b.End = window.End
		}
		clipped = append(clipped, b)
	}
	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].Start.Before(clipped[j].Start)
	})

	var free []Interval
	cursor := window.Start
	for _, b := range clipped {
		if cursor.Before(b.Start) {
			free = append(free, Interval{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if cursor.Before(window.End) {
		free = append(free, Interval{Start: cursor, End: window.End})
	}
	return free
}
