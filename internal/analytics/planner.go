package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

const (
	planWorkBlocksPerDay = 2
	planMaxBlockHours    = 3.0
	planMinBlockHours    = 0.5
	planBreakHours       = 1.0
)

type PlanBlockType string

const (
	PlanBlockWork  PlanBlockType = "work"
	PlanBlockBreak PlanBlockType = "break"
	PlanBlockClass PlanBlockType = "class"
)

type PlanBlock struct {
	Time             string
	DeliverableID    string
	DeliverableTitle string
	Hours            float64
	Type             PlanBlockType
}

type PlanDay struct {
	Date    time.Time
	DayName string
	// AvailableHours can go negative when a day's class load exceeds the
	// daily share of the weekly budget; it is propagated rather than
	// clamped so the caller can see the shortfall.
	AvailableHours float64
	Blocks         []PlanBlock
}

type PlanPriority struct {
	DeliverableID    string
	DeliverableTitle string
	DueDate          time.Time
	HoursNeeded      float64
	Reasoning        string
}

type SchedulePlan struct {
	Days                []PlanDay
	TopPriorities       []PlanPriority
	TotalHoursAllocated float64
	Explanation         string
}

// BuildSchedulePlan lays out the next 7 days for one course: fixed class
// blocks first, then up to two work blocks per day drawn from the top-3
// priorities, then a break when slack remains. The top-3 list is computed
// once for the whole week, not per day.
func BuildSchedulePlan(courseItems []domain.Deliverable, weeklyHours float64, blocks []domain.ScheduleBlock, now time.Time) SchedulePlan {
	var workable []domain.Deliverable
	for _, d := range courseItems {
		if d.Status == domain.StatusSubmitted || d.Status == domain.StatusGraded {
			continue
		}
		workable = append(workable, d)
	}

	top := TodaysFocus(workable, now)
	priorities := make([]PlanPriority, 0, len(top))
	for _, f := range top {
		priorities = append(priorities, PlanPriority{
			DeliverableID:    f.Deliverable.ID,
			DeliverableTitle: f.Deliverable.Title,
			DueDate:          f.Deliverable.DueDate,
			HoursNeeded:      f.Deliverable.RemainingHours(),
			Reasoning:        f.Reason,
		})
	}

	dailyHours := weeklyHours / 7
	today := DayOf(now)
	days := make([]PlanDay, 0, 7)
	var totalAllocated float64

	for i := 0; i < 7; i++ {
		date := today.AddDate(0, 0, i)
		weekday := int(date.Weekday())

		day := PlanDay{
			Date:           date,
			DayName:        date.Weekday().String(),
			AvailableHours: dailyHours,
		}

		for _, b := range blocks {
			if b.DayOfWeek != weekday {
				continue
			}
			hours := b.Hours()
			day.AvailableHours -= hours
			day.Blocks = append(day.Blocks, PlanBlock{
				Time:  fmt.Sprintf("%s - %s", b.StartTime, b.EndTime),
				Hours: hours,
				Type:  PlanBlockClass,
			})
		}

		pool := day.AvailableHours
		for j := 0; j < planWorkBlocksPerDay && pool > 0 && j < len(priorities); j++ {
			blockHours := pool / float64(planWorkBlocksPerDay-j)
			if blockHours > planMaxBlockHours {
				blockHours = planMaxBlockHours
			}
			if blockHours <= planMinBlockHours {
				continue
			}
			slot := "9:00 AM - 12:00 PM"
			if j > 0 {
				slot = "2:00 PM - 5:00 PM"
			}
			day.Blocks = append(day.Blocks, PlanBlock{
				Time:             slot,
				DeliverableID:    priorities[j].DeliverableID,
				DeliverableTitle: priorities[j].DeliverableTitle,
				Hours:            blockHours,
				Type:             PlanBlockWork,
			})
			pool -= blockHours
			totalAllocated += blockHours
		}

		if pool > planMinBlockHours {
			day.Blocks = append(day.Blocks, PlanBlock{
				Time:  "12:00 PM - 1:00 PM",
				Hours: planBreakHours,
				Type:  PlanBlockBreak,
			})
		}

		sort.SliceStable(day.Blocks, func(a, b int) bool {
			return startTimeOf(day.Blocks[a].Time) < startTimeOf(day.Blocks[b].Time)
		})

		days = append(days, day)
	}

	names := make([]string, 0, len(priorities))
	for _, p := range priorities {
		names = append(names, p.DeliverableTitle)
	}

	return SchedulePlan{
		Days:                days,
		TopPriorities:       priorities,
		TotalHoursAllocated: totalAllocated,
		Explanation: fmt.Sprintf(
			"7-day schedule with %.0fh/week available (%.1fh/day average). Focus on top %d priorities: %s. Total %.1fh allocated across the week.",
			weeklyHours, dailyHours, len(priorities), strings.Join(names, ", "), totalAllocated),
	}
}

// startTimeOf extracts the textual start time of a "start - end" range.
// Day blocks are ordered by this text, matching how the schedule renders.
func startTimeOf(timeRange string) string {
	if idx := strings.Index(timeRange, " - "); idx >= 0 {
		return timeRange[:idx]
	}
	return timeRange
}
