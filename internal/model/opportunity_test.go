package model

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScored(t *testing.T) {
	var o Opportunity
	assert.False(t, o.Scored())

	zero := 0
	o.QualityScore = &zero
	assert.True(t, o.Scored(), "a zero score is still scored")
}

func TestAppendNote(t *testing.T) {
	var o Opportunity

	o.AppendNote("first")
	assert.Equal(t, "first", o.Notes)

	o.AppendNote("second")
	assert.Equal(t, "first\nsecond", o.Notes)

	o.AppendNote("   ")
	assert.Equal(t, "first\nsecond", o.Notes, "blank notes are dropped")

	long := strings.Repeat("x", MaxNoteLen+100)
	o.AppendNote(long)
	lines := strings.Split(o.Notes, "\n")
	assert.Len(t, lines[len(lines)-1], MaxNoteLen)
}

func TestLastTouch(t *testing.T) {
	contacted := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	followed := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	o := Opportunity{ContactedDate: contacted}
	assert.Equal(t, contacted, o.LastTouch())

	o.LastFollowUpDate = followed
	assert.Equal(t, followed, o.LastTouch())
}
