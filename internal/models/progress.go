// internal/models/progress.go
package models

// Progress is the owner-view cursor over a plan's task sequence, made
// explicit so the terminal state is unambiguous instead of relying on
// index == length comparisons at every call site.
type Progress struct {
	Index int // position of the active task; equals Total once done
	Total int
}

// NewProgress clamps idx into [0, total] and returns the cursor.
func NewProgress(idx, total int) Progress {
	if idx < 0 {
		idx = 0
	}
	if idx > total {
		idx = total
	}
	return Progress{Index: idx, Total: total}
}

// Done reports whether the sequence is fully advanced.
func (p Progress) Done() bool {
	return p.Index >= p.Total
}

// Current returns the active task position, or false when the plan is
// fully advanced or has no tasks.
func (p Progress) Current() (int, bool) {
	if p.Done() {
		return 0, false
	}
	return p.Index, true
}

// Advance returns the cursor moved one task forward.
func (p Progress) Advance() Progress {
	return NewProgress(p.Index+1, p.Total)
}
