package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSummary_Add(t *testing.T) {
	t.Parallel()

	var s RunSummary
	assert.False(t, s.Complete())

	s.Add(ResizeResult{Result: Success, Path: "a.png", Size: 48})
	assert.True(t, s.Complete())

	s.Add(ResizeResult{Result: Failure, Path: "b.png", Size: 72, Error: "permission denied"})
	assert.Equal(t, 2, s.Attempted)
	assert.Equal(t, 1, s.Succeeded)
	assert.False(t, s.Complete())
	assert.Len(t, s.Results, 2)
}
