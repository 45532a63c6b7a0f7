// Package timers keeps transient flags (click flashes, hit reactions) as "expire at" entries that the
// frame loop polls, so every pending flag can be dropped in one call on teardown.
package timers

import (
	"sort"
	"time"
)

// Table maps a flag name to the instant it expires. It is owned by the frame loop and is not safe for concurrent
// use.
type Table struct {
	entries map[string]time.Time
}

// Create a new, empty timer table.
func NewTable() *Table {
	return &Table{
		entries: make(map[string]time.Time),
	}
}

// Set arms (or re-arms) the named flag so it stays active until now+d.
func (t *Table) Set(name string, now time.Time, d time.Duration) {
	t.entries[name] = now.Add(d)
}

// Cancel drops the named flag without waiting for it to expire.
func (t *Table) Cancel(name string) {
	delete(t.entries, name)
}

// Active reports whether the named flag is armed and has not reached its expiry at now.
func (t *Table) Active(name string, now time.Time) bool {
	expireAt, found := t.entries[name]
	if !found {
		return false
	}
	return now.Before(expireAt)
}

// Armed reports whether the named flag is still in the table, expired or not.
func (t *Table) Armed(name string) bool {
	_, found := t.entries[name]
	return found
}

// ExpiresAt returns the expiry of the named flag.
func (t *Table) ExpiresAt(name string) (time.Time, bool) {
	expireAt, found := t.entries[name]
	return expireAt, found
}

// Expire removes every flag whose expiry is at or before now and returns their names ordered by expiry.
func (t *Table) Expire(now time.Time) []string {
	var expired []string
	for name, expireAt := range t.entries {
		if !now.Before(expireAt) {
			expired = append(expired, name)
		}
	}

	sort.Slice(expired, func(i, j int) bool {
		ei, ej := t.entries[expired[i]], t.entries[expired[j]]
		if ei.Equal(ej) {
			return expired[i] < expired[j]
		}
		return ei.Before(ej)
	})

	for _, name := range expired {
		delete(t.entries, name)
	}
	return expired
}

// Pending returns the number of armed flags.
func (t *Table) Pending() int {
	return len(t.entries)
}

// Clear drops every armed flag.
func (t *Table) Clear() {
	t.entries = make(map[string]time.Time)
}
