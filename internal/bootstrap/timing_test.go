package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartupTimer_Phases(t *testing.T) {
	timer := NewStartupTimer()

	timer.MarkDuration("pages", 3*time.Millisecond)
	timer.Mark("config")
	timer.MarkDuration("pages", 5*time.Millisecond)

	d, ok := timer.Phase("pages")
	assert.True(t, ok)
	assert.Equal(t, 5*time.Millisecond, d)
	assert.Equal(t, []string{"pages", "config"}, timer.order)

	_, ok = timer.Phase("missing")
	assert.False(t, ok)
	assert.GreaterOrEqual(t, timer.Total(), time.Duration(0))
}
