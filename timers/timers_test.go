package timers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActiveUntilExactExpiry(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	table := NewTable()
	table.Set("click", now, 150*time.Millisecond)

	assert.True(t, table.Active("click", now))
	assert.True(t, table.Active("click", now.Add(149*time.Millisecond)))
	assert.False(t, table.Active("click", now.Add(150*time.Millisecond)))
	assert.False(t, table.Active("missing", now))
}

func TestExpireOrdersByExpiry(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	table := NewTable()
	table.Set("reset", now, 500*time.Millisecond)
	table.Set("hit", now, 200*time.Millisecond)
	table.Set("slowmo", now, 800*time.Millisecond)

	require.Empty(t, table.Expire(now.Add(100*time.Millisecond)))
	require.Equal(t, []string{"hit", "reset"}, table.Expire(now.Add(600*time.Millisecond)))
	require.Equal(t, 1, table.Pending())
	require.True(t, table.Armed("slowmo"))
	require.False(t, table.Armed("hit"))
}

func TestCancelAndClear(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	table := NewTable()
	table.Set("a", now, time.Second)
	table.Set("b", now, time.Second)

	table.Cancel("a")
	assert.False(t, table.Active("a", now))
	assert.Equal(t, 1, table.Pending())

	expireAt, found := table.ExpiresAt("b")
	require.True(t, found)
	assert.Equal(t, now.Add(time.Second), expireAt)

	table.Clear()
	assert.Equal(t, 0, table.Pending())
	assert.Empty(t, table.Expire(now.Add(time.Hour)))
}
