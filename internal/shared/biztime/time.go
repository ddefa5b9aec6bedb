// Package biztime keeps all stored and transported times in UTC.
// Persistence models hold Unix milliseconds; entities hold time.Time.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToMilli converts t to Unix milliseconds for storage.
func ToMilli(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// FromMilli converts stored Unix milliseconds back to a UTC time.
func FromMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ToMilliPtr is ToMilli for optional times.
func ToMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := ToMilli(*t)
	return &ms
}

// FromMilliPtr is FromMilli for optional times.
func FromMilliPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := FromMilli(*ms)
	return &t
}
