package clock

import "time"

// Clock supplies "now" and "today" in the business time zone. Day-count and
// lead-time rules depend on store-local day boundaries, so callers must never
// reach for time.Now directly.
type Clock interface {
	Now() time.Time
	Today() time.Time
	Location() *time.Location
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *RealClock) Today() time.Time {
	return Truncate(c.Now())
}

func (c *RealClock) Location() *time.Location {
	return c.loc
}

// Truncate drops the time-of-day component, keeping the date in its own zone.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type MockClock struct {
	currentTime time.Time
	loc         *time.Location
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t, loc: t.Location()}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime.In(c.loc)
}

func (c *MockClock) Today() time.Time {
	return Truncate(c.Now())
}

func (c *MockClock) Location() *time.Location {
	return c.loc
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
