package gtick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecondsCarriesFractions(t *testing.T) {
	var s Seconds
	assert.Equal(t, 0, s.Add(0.4))
	assert.Equal(t, 0, s.Add(0.4))
	assert.Equal(t, 1, s.Add(0.4))
	assert.Equal(t, 0, s.Add(0.5))
	assert.Equal(t, 1, s.Add(0.3))
}

func TestSecondsLongFrame(t *testing.T) {
	var s Seconds
	assert.Equal(t, 3, s.Add(3.25))
	assert.Equal(t, 1, s.Add(0.75))
	assert.Equal(t, 0, s.Add(-1))
}

func TestSecondsReset(t *testing.T) {
	var s Seconds
	s.Add(0.9)
	s.Reset()
	assert.Equal(t, 0, s.Add(0.5))
}

// a dialog held open for many frames still yields one second per second
func TestSecondsSteadyFrames(t *testing.T) {
	var s Seconds
	n := 0
	for i := 0; i < 600; i++ {
		n += s.Add(1.0 / 60)
	}
	assert.InDelta(t, 10, n, 1)
}
