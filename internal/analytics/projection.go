package analytics

import (
	"math"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

type WorkloadDay struct {
	Date             time.Time
	Hours            float64
	DeliverableCount int
}

// SevenDayWorkload buckets remaining effort by due date across today and
// the six days after it.
func SevenDayWorkload(items []domain.Deliverable, now time.Time) []WorkloadDay {
	today := DayOf(now)
	days := make([]WorkloadDay, 0, 7)
	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i)
		day := WorkloadDay{Date: date}
		for _, d := range items {
			if d.Status == domain.StatusGraded || !DayOf(d.DueDate).Equal(date) {
				continue
			}
			day.DeliverableCount++
			day.Hours += d.RemainingHours()
		}
		days = append(days, day)
	}
	return days
}

type GradeProjectionDay struct {
	Date      time.Time
	Current   float64
	Projected float64
	Min       float64
	Max       float64
}

// SevenDayGradeProjection emits one record per day for the next 7 days.
// The current average and blended projection are computed once and repeated
// on every day: the band is deliberately flat, since grades only move when
// a new grade lands, and chart consumers expect the constant series.
func SevenDayGradeProjection(items []domain.Deliverable, defaultTarget float64, now time.Time) []GradeProjectionDay {
	current := WeightedAverage(items).Average
	projected := ProjectedFinal(items, defaultTarget)
	lo := math.Max(0, projected-5)
	hi := math.Min(100, projected+5)

	today := DayOf(now)
	days := make([]GradeProjectionDay, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, GradeProjectionDay{
			Date:      today.AddDate(0, 0, i),
			Current:   current,
			Projected: projected,
			Min:       lo,
			Max:       hi,
		})
	}
	return days
}
