// pkg/schedule/suggest_test.go
package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func candidates(n int) []Candidate {
	out := make([]Candidate, n)
	for i := range out {
		out[i] = Candidate{ID: uuid.New(), Title: "task", Priority: 3, Order: i}
	}
	return out
}

func TestPack_FillsWindowInOrder(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(12, 0)}
	tasks := candidates(3)

	blocks := Pack(window, time.Hour, nil, tasks)
	require.Len(t, blocks, 3)

	assert.Equal(t, day(9, 0), blocks[0].Start)
	assert.Equal(t, day(10, 0), blocks[0].End)
	assert.Equal(t, day(11, 0), blocks[2].Start)
	assert.Equal(t, tasks[0].ID, blocks[0].TaskID)
}

func TestPack_PriorityBeforeOrder(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(10, 0)}
	low := Candidate{ID: uuid.New(), Priority: 2, Order: 0}
	high := Candidate{ID: uuid.New(), Priority: 5, Order: 1}

	blocks := Pack(window, time.Hour, nil, []Candidate{low, high})
	require.Len(t, blocks, 1)
	assert.Equal(t, high.ID, blocks[0].TaskID)
}

func TestPack_SkipsBusyIntervals(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(13, 0)}
	busy := []Interval{
		{Start: day(10, 0), End: day(11, 30)},
	}
	tasks := candidates(3)

	blocks := Pack(window, time.Hour, busy, tasks)
	require.Len(t, blocks, 2)

	// One block fits before the meeting, one after; the half hour
	// 11:30-12:30 hosts the second block.
	assert.Equal(t, day(9, 0), blocks[0].Start)
	assert.Equal(t, day(11, 30), blocks[1].Start)

	for _, b := range blocks {
		for _, busyIv := range busy {
			overlaps := b.Start.Before(busyIv.End) && busyIv.Start.Before(b.End)
			assert.False(t, overlaps, "block overlaps busy interval")
		}
	}
}

func TestPack_OverlappingBusyIntervalsMerged(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(12, 0)}
	busy := []Interval{
		{Start: day(9, 0), End: day(10, 30)},
		{Start: day(10, 0), End: day(11, 0)},
	}

	blocks := Pack(window, time.Hour, busy, candidates(4))
	require.Len(t, blocks, 1)
	assert.Equal(t, day(11, 0), blocks[0].Start)
	assert.Equal(t, day(12, 0), blocks[0].End)
}

func TestPack_DegenerateInputs(t *testing.T) {
	window := Interval{Start: day(9, 0), End: day(10, 0)}

	assert.Nil(t, Pack(window, 0, nil, candidates(1)))
	assert.Nil(t, Pack(Interval{Start: day(10, 0), End: day(9, 0)}, time.Hour, nil, candidates(1)))
	assert.Nil(t, Pack(window, time.Hour, nil, nil))

	// Window fully covered by a busy interval.
	busy := []Interval{{Start: day(8, 0), End: day(11, 0)}}
	assert.Empty(t, Pack(window, time.Hour, busy, candidates(2)))
}
