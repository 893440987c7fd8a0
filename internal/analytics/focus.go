package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// Focus scoring constants. Overdue work dominates everything else; work due
// inside 3 days ranks by proximity; remaining effort and grade weight break
// up the rest.
const (
	focusOverdueBase    = 1000.0
	focusOverduePerDay  = 10.0
	focusDueSoonBase    = 500.0
	focusDueSoonPerDay  = 100.0
	focusDueSoonDays    = 3
	focusHoursWeight    = 2.0
	focusTopN           = 3
)

type FocusItem struct {
	Deliverable  domain.Deliverable
	Score        float64
	DaysUntilDue int
	Overdue      bool
	Reason       string
}

// TodaysFocus ranks active deliverables by urgency, effort, and weight and
// returns the top 3. Ties keep snapshot order (sort is stable); no
// secondary key exists on purpose.
func TodaysFocus(items []domain.Deliverable, now time.Time) []FocusItem {
	var scored []FocusItem
	for _, d := range items {
		if !d.IsActive() {
			continue
		}
		scored = append(scored, scoreFocus(d, now))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > focusTopN {
		scored = scored[:focusTopN]
	}
	return scored
}

func scoreFocus(d domain.Deliverable, now time.Time) FocusItem {
	days := DaysBetween(now, d.DueDate)
	overdue := days < 0

	var score float64
	switch {
	case overdue:
		score = focusOverdueBase + focusOverduePerDay*float64(-days)
	case days <= focusDueSoonDays:
		score = focusDueSoonBase - focusDueSoonPerDay*float64(days)
	}
	score += focusHoursWeight * d.RemainingHours()
	score += d.GradeWeight

	var reason string
	if overdue {
		reason = fmt.Sprintf("Overdue by %d day%s, worth %.0f%%", -days, plural(-days), d.GradeWeight)
	} else {
		reason = fmt.Sprintf("Due in %d day%s, worth %.0f%%", days, plural(days), d.GradeWeight)
	}

	return FocusItem{
		Deliverable:  d,
		Score:        score,
		DaysUntilDue: days,
		Overdue:      overdue,
		Reason:       reason,
	}
}
