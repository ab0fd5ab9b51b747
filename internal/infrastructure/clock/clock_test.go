package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_NowUsesLocation(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	c := New(kolkata)
	c.now = func() time.Time { return time.Date(2025, 3, 31, 20, 0, 0, 0, time.UTC) }

	now := c.Now()
	assert.Equal(t, kolkata, now.Location())
	// 20:00 UTC is already the next day in India.
	assert.Equal(t, "2025-04-01", now.Format("2006-01-02"))
}

func TestNew_DefaultsToUTC(t *testing.T) {
	c := New(nil)

	assert.Equal(t, time.UTC, c.Location())
	assert.Equal(t, time.UTC, c.Now().Location())
}
