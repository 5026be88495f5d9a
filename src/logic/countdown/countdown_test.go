package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpiresExactlyOnceAfterDuration(t *testing.T) {
	for _, d := range []int{1, 7, 60} {
		c := New(d)
		c.Reset()
		fired := 0
		firedAt := -1
		for tick := 1; tick <= d+10; tick++ {
			if c.Tick() {
				fired++
				firedAt = tick
			}
		}
		assert.Equal(t, 1, fired, "duration %d", d)
		assert.Equal(t, d, firedAt, "duration %d", d)
		assert.Equal(t, 0, c.Left)
		assert.False(t, c.Running)
	}
}

func TestDisabledAndStopped(t *testing.T) {
	c := New(0)
	c.Reset()
	assert.False(t, c.Enabled())
	assert.False(t, c.Tick())

	c = New(-3)
	assert.Equal(t, 0, c.Duration)

	c = New(5)
	c.Reset()
	c.Tick()
	c.Stop()
	assert.False(t, c.Tick())
	assert.Equal(t, 4, c.Left)

	c.Reset()
	assert.Equal(t, 5, c.Left)
	assert.True(t, c.Running)
}

func TestNotRunningBeforeReset(t *testing.T) {
	c := New(3)
	assert.False(t, c.Tick())
	assert.Equal(t, 3, c.Left)
}
