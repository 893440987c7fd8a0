package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// minAllocHours is the smallest slice worth recommending when splitting
// hours across two items.
const minAllocHours = 2.0

type EffortAllocation struct {
	DeliverableID    string
	DeliverableTitle string
	RecommendedHours float64
	Reasoning        string
}

type EffortPlan struct {
	Allocations []EffortAllocation
	TotalHours  float64
	Explanation string
}

// AllocateEffort splits availableHours across one or two selected
// deliverables by due-date urgency and grade weight. Returns nil for an
// empty or oversized selection.
func AllocateEffort(selected []domain.Deliverable, availableHours float64, now time.Time) *EffortPlan {
	if len(selected) == 0 || len(selected) > 2 {
		return nil
	}

	if len(selected) == 1 {
		return allocateSingle(selected[0], availableHours, now)
	}
	return allocatePair(selected, availableHours, now)
}

func allocateSingle(d domain.Deliverable, availableHours float64, now time.Time) *EffortPlan {
	days := DaysBetween(now, d.DueDate)
	recommended := math.Min(availableHours, d.RemainingHours())

	var reasoning string
	switch {
	case days < 0:
		reasoning = fmt.Sprintf("Overdue and worth %.0f%% - highest priority", d.GradeWeight)
	case days <= 3:
		reasoning = fmt.Sprintf("Due in %d day%s and worth %.0f%% - urgent", days, plural(days), d.GradeWeight)
	default:
		reasoning = fmt.Sprintf("Due in %d day%s and worth %.0f%%", days, plural(days), d.GradeWeight)
	}

	alloc := EffortAllocation{
		DeliverableID:    d.ID,
		DeliverableTitle: d.Title,
		RecommendedHours: recommended,
		Reasoning:        reasoning,
	}
	return &EffortPlan{
		Allocations: []EffortAllocation{alloc},
		TotalHours:  recommended,
		Explanation: fmt.Sprintf("Focus all %.0fh on %s. %s.", availableHours, d.Title, reasoning),
	}
}

type allocCandidate struct {
	deliverable domain.Deliverable
	priority    float64
	days        int
	overdue     bool
	remaining   float64
	hours       float64
}

func allocatePair(selected []domain.Deliverable, availableHours float64, now time.Time) *EffortPlan {
	candidates := make([]allocCandidate, 0, len(selected))
	var totalPriority float64
	for _, d := range selected {
		days := DaysBetween(now, d.DueDate)
		overdue := days < 0

		urgency := 1.0
		switch {
		case overdue:
			urgency = 2.0
		case days <= 3:
			urgency = 1.5
		case days <= 7:
			urgency = 1.2
		}
		priority := d.GradeWeight * urgency
		totalPriority += priority

		candidates = append(candidates, allocCandidate{
			deliverable: d,
			priority:    priority,
			days:        days,
			overdue:     overdue,
			remaining:   d.RemainingHours(),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority > candidates[j].priority
	})

	// First pass: proportional shares, floored to whole hours, capped by
	// each item's remaining work and the shrinking pool, with a 2h floor so
	// neither item gets a token slice.
	pool := availableHours
	for i := range candidates {
		share := 1.0 / float64(len(candidates))
		if totalPriority > 0 {
			share = candidates[i].priority / totalPriority
		}
		allocated := math.Min(math.Floor(share*availableHours), math.Min(candidates[i].remaining, pool))
		candidates[i].hours = math.Max(minAllocHours, allocated)
		pool -= candidates[i].hours
	}

	// Second pass: hand leftover pool to items in priority order, up to
	// each item's unused remaining capacity.
	for i := range candidates {
		if pool <= 0 {
			break
		}
		canTake := math.Min(pool, math.Max(0, candidates[i].remaining-candidates[i].hours))
		candidates[i].hours += canTake
		pool -= canTake
	}

	allocations := make([]EffortAllocation, 0, len(candidates))
	var total float64
	var parts []string
	for _, c := range candidates {
		var reasoning string
		switch {
		case c.overdue:
			reasoning = fmt.Sprintf("Overdue, worth %.0f%% (highest priority)", c.deliverable.GradeWeight)
		case c.days <= 3:
			reasoning = fmt.Sprintf("Due in %d day%s, worth %.0f%% (urgent)", c.days, plural(c.days), c.deliverable.GradeWeight)
		default:
			reasoning = fmt.Sprintf("Due in %d day%s, worth %.0f%%", c.days, plural(c.days), c.deliverable.GradeWeight)
		}
		allocations = append(allocations, EffortAllocation{
			DeliverableID:    c.deliverable.ID,
			DeliverableTitle: c.deliverable.Title,
			RecommendedHours: c.hours,
			Reasoning:        reasoning,
		})
		total += c.hours
		parts = append(parts, fmt.Sprintf("%.0fh on %s", c.hours, c.deliverable.Title))
	}

	return &EffortPlan{
		Allocations: allocations,
		TotalHours:  total,
		Explanation: fmt.Sprintf("Split %.0fh between %d items: %s. Prioritized by due date, weight, and remaining hours.",
			total, len(allocations), strings.Join(parts, ", ")),
	}
}
