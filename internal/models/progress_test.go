// internal/models/progress_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		name        string
		idx, total  int
		wantIndex   int
		wantDone    bool
		wantCurrent bool
	}{
		{name: "start of sequence", idx: 0, total: 3, wantIndex: 0, wantCurrent: true},
		{name: "mid sequence", idx: 2, total: 3, wantIndex: 2, wantCurrent: true},
		{name: "fully advanced", idx: 3, total: 3, wantIndex: 3, wantDone: true},
		{name: "overshoot clamps to total", idx: 9, total: 3, wantIndex: 3, wantDone: true},
		{name: "negative clamps to zero", idx: -1, total: 3, wantIndex: 0, wantCurrent: true},
		{name: "empty sequence is done", idx: 0, total: 0, wantIndex: 0, wantDone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProgress(tt.idx, tt.total)
			assert.Equal(t, tt.wantIndex, p.Index)
			assert.Equal(t, tt.wantDone, p.Done())

			idx, ok := p.Current()
			assert.Equal(t, tt.wantCurrent, ok)
			if ok {
				assert.Equal(t, tt.wantIndex, idx)
			}
		})
	}
}

func TestProgress_Advance(t *testing.T) {
	p := NewProgress(0, 2)

	p = p.Advance()
	assert.Equal(t, 1, p.Index)
	assert.False(t, p.Done())

	p = p.Advance()
	assert.Equal(t, 2, p.Index)
	assert.True(t, p.Done())

	// Advancing past the end stays at the end.
	p = p.Advance()
	assert.Equal(t, 2, p.Index)
}
