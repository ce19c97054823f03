package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, errors.New("start time must be before end time")
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// BillableHours is the duration in whole hours, rounded up and clamped to a
// minimum of one hour. Pricing always bills at least one hour.
func (ts TimeSlot) BillableHours() int64 {
	return BillableHours(ts.start, ts.end)
}

func BillableHours(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 1
	}
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	if hours < 1 {
		hours = 1
	}
	return hours
}

// Overlaps uses half-open interval semantics: [a, b) and [b, c) do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

// Reason is the owner-supplied explanation attached to reject and send-back
// transitions.
type Reason struct {
	value string
}

func NewReason(value string) (Reason, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Reason{}, ErrReasonRequired
	}
	return Reason{value: trimmed}, nil
}

func (r Reason) String() string {
	return r.value
}

func (r Reason) IsEmpty() bool {
	return r.value == ""
}
