package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

type OverloadResult struct {
	Level   domain.RiskLevel
	Score   int
	Reasons []string
}

// ComputeOverloadRisk classifies near-term workload pressure from the
// utilization of the weekly budget by work due within 7 days.
func ComputeOverloadRisk(items []domain.Deliverable, weeklyBudget float64, now time.Time) OverloadResult {
	p := partitionSnapshot(items, now)
	totalHours := sumRemaining(p.upcoming)

	var highPriority, highRisk int
	for _, d := range p.upcoming {
		if d.Priority == domain.PriorityHigh {
			highPriority++
		}
		if d.RiskLevel == domain.RiskHigh {
			highRisk++
		}
	}

	var utilization float64
	switch {
	case weeklyBudget > 0:
		utilization = totalHours / weeklyBudget * 100
	case totalHours > 0:
		// Zero budget with pending work: past any finite band.
		utilization = math.Inf(1)
	}

	var level domain.RiskLevel
	var score int
	switch {
	case utilization < 70:
		level = domain.RiskLow
		score = int(math.Round(utilization * 0.5))
	case utilization < 100:
		level = domain.RiskMedium
		score = int(math.Round(50 + (utilization-70)*1.5))
	case utilization < 150:
		level = domain.RiskHigh
		score = int(math.Round(70 + (utilization-100)*0.6))
	default:
		level = domain.RiskCritical
		score = 100
		if rounded := math.Round(85 + (utilization-150)*0.3); rounded < 100 {
			score = int(rounded)
		}
	}

	var reasons []string
	if len(p.upcoming) > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"%d deliverable%s due within 7 days", len(p.upcoming), plural(len(p.upcoming))))
	}
	if totalHours > 0 && weeklyBudget > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Estimated %.0fh of work vs %.0fh weekly capacity (%.0f%% utilization)",
			totalHours, weeklyBudget, utilization))
	} else if totalHours > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"Estimated %.0fh of work with no weekly capacity configured", totalHours))
	}
	if highPriority > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"%d high-priority deliverable%s", highPriority, plural(highPriority)))
	}
	if highRisk > 0 {
		reasons = append(reasons, fmt.Sprintf(
			"%d deliverable%s marked as high risk", highRisk, plural(highRisk)))
	}
	if len(reasons) == 0 {
		reasons = append(reasons, "No upcoming deadlines in the next 7 days - good time to get ahead")
	}

	return OverloadResult{Level: level, Score: score, Reasons: reasons}
}
