package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionID(t *testing.T) {
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	a := SessionID(at, "GPT-4")
	assert.Len(t, a, SessionIDLength)

	// deterministic in (time, model)
	assert.Equal(t, a, SessionID(at, "GPT-4"))
	assert.NotEqual(t, a, SessionID(at, "Claude"))
	assert.NotEqual(t, a, SessionID(at.Add(time.Second), "GPT-4"))
}

func TestRandomSessionID(t *testing.T) {
	a := RandomSessionID()
	b := RandomSessionID()
	assert.Len(t, a, SessionIDLength)
	assert.Len(t, b, SessionIDLength)
	assert.NotEqual(t, a, b)
}
