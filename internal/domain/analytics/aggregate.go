// Package analytics derives dashboard series from already-fetched booking and
// machine rows. Everything here is a pure function of its inputs so the
// handlers can recompute on every request without hidden state.
package analytics

import (
	"sort"
	"time"

	"machine-rental/internal/domain/booking"

	"github.com/google/uuid"
)

const (
	revenueMonths  = 6
	utilizationTop = 5
)

// BookingRecord is the slice of a booking the aggregations need.
type BookingRecord struct {
	Status            booking.Status
	StartsAt          time.Time
	EndsAt            time.Time
	PricePerHourCents *int64
}

// RevenueCents bills the period once at the hourly rate, at least one hour;
// bookings without an agreed rate contribute nothing.
func (r BookingRecord) RevenueCents() int64 {
	if r.PricePerHourCents == nil {
		return 0
	}
	return booking.BillableHours(r.StartsAt, r.EndsAt) * *r.PricePerHourCents
}

type RevenueBucket struct {
	Label        string // short month name, e.g. "Jan"
	Year         int
	Month        time.Month
	RevenueCents int64
}

// RevenueSeries buckets bookings by start time over the trailing six calendar
// months ending at now's month, oldest first. The result always has exactly
// six entries.
func RevenueSeries(bookings []BookingRecord, now time.Time) []RevenueBucket {
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]RevenueBucket, 0, revenueMonths)
	for i := revenueMonths - 1; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var total int64
		for _, b := range bookings {
			if !b.StartsAt.Before(monthStart) && b.StartsAt.Before(monthEnd) {
				total += b.RevenueCents()
			}
		}

		buckets = append(buckets, RevenueBucket{
			Label:        monthStart.Format("Jan"),
			Year:         monthStart.Year(),
			Month:        monthStart.Month(),
			RevenueCents: total,
		})
	}
	return buckets
}

type StatusCount struct {
	Status booking.Status
	Count  int
	// Ratio is the count normalized against the largest group, 0-100.
	Ratio int
}

// StatusMix groups bookings by status. The largest group always gets ratio
// 100; an empty input yields an empty result rather than a division error.
func StatusMix(bookings []BookingRecord) []StatusCount {
	if len(bookings) == 0 {
		return nil
	}

	counts := make(map[booking.Status]int)
	for _, b := range bookings {
		counts[b.Status]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	result := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		result = append(result, StatusCount{
			Status: status,
			Count:  count,
			Ratio:  count * 100 / maxCount,
		})
	}

	// Deterministic output: largest group first, then by status name.
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Status < result[j].Status
	})
	return result
}

// MachineRecord is the instance-count view of a machine template.
type MachineRecord struct {
	ID              uuid.UUID
	Name            string
	ActiveInstances int
	TotalInstances  int
}

type UtilizationEntry struct {
	MachineID uuid.UUID
	Name      string
	// Ratio is active/total in [0,1]; 0 when the machine has no instances.
	Ratio float64
}

// UtilizationRanking sorts machines by active/total instance ratio, highest
// first, and keeps the top five. The sort is stable so ties preserve input
// order.
func UtilizationRanking(machines []MachineRecord) []UtilizationEntry {
	entries := make([]UtilizationEntry, 0, len(machines))
	for _, m := range machines {
		var ratio float64
		if m.TotalInstances > 0 {
			ratio = float64(m.ActiveInstances) / float64(m.TotalInstances)
		}
		entries = append(entries, UtilizationEntry{
			MachineID: m.ID,
			Name:      m.Name,
			Ratio:     ratio,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Ratio > entries[j].Ratio
	})

	if len(entries) > utilizationTop {
		entries = entries[:utilizationTop]
	}
	return entries
}
