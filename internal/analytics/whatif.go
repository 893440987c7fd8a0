package analytics

import (
	"fmt"
	"math"

	"github.com/natbrooks/orbit/internal/domain"
)

type GradeBreakdownItem struct {
	Item         string
	Weight       float64
	CurrentGrade *float64
	NeededGrade  *float64
}

type GradeWhatIfResult struct {
	TargetFinalGrade   float64
	CurrentWeightedAvg float64
	WeightCovered      float64
	WeightRemaining    float64
	// NeededAvgOnRemaining is clamped to [0,100] for display; the
	// explanation branches fire on the unclamped value.
	NeededAvgOnRemaining float64
	Explanation          string
	Breakdown            []GradeBreakdownItem
}

// GradeWhatIf computes the average needed on remaining items of one course
// to reach a target final grade. Returns nil when the course has no
// deliverables.
func GradeWhatIf(courseItems []domain.Deliverable, targetFinal float64) *GradeWhatIfResult {
	if len(courseItems) == 0 {
		return nil
	}

	var gradedTotal, totalWeight, weightCovered float64
	var gradedCount, ungradedCount int
	for _, d := range courseItems {
		totalWeight += d.GradeWeight
		if g := d.Grade(); g != nil {
			gradedTotal += *g * d.GradeWeight
			weightCovered += d.GradeWeight
			gradedCount++
		} else {
			ungradedCount++
		}
	}
	weightRemaining := totalWeight - weightCovered

	var currentAvg float64
	if weightCovered > 0 {
		currentAvg = gradedTotal / weightCovered
	}

	var needed float64
	if weightRemaining > 0 {
		needed = (targetFinal*totalWeight - gradedTotal) / weightRemaining
	}

	breakdown := make([]GradeBreakdownItem, 0, len(courseItems))
	for _, d := range courseItems {
		item := GradeBreakdownItem{Item: d.Title, Weight: d.GradeWeight}
		if g := d.Grade(); g != nil {
			item.CurrentGrade = g
		} else {
			item.NeededGrade = domain.FloatPtr(needed)
		}
		breakdown = append(breakdown, item)
	}

	var explanation string
	switch {
	case weightCovered == 0:
		explanation = fmt.Sprintf(
			"You haven't received any grades yet. To achieve %.0f%%, you'll need an average of %.1f%% across all %d remaining items.",
			targetFinal, needed, ungradedCount)
	case needed < 0:
		explanation = fmt.Sprintf(
			"Great news! Your current average of %.1f%% (%.0f%% weight) already puts you above your %.0f%% target. You can score as low as 0%% on remaining items and still meet your goal.",
			currentAvg, weightCovered, targetFinal)
	case needed > 100:
		explanation = fmt.Sprintf(
			"Your target of %.0f%% is difficult to achieve. You'd need an average of %.1f%% on remaining items (%.0f%% weight), which is above 100%%. Consider adjusting your target or focusing on maximizing grades.",
			targetFinal, needed, weightRemaining)
	default:
		explanation = fmt.Sprintf(
			"To achieve %.0f%%, you need an average of %.1f%% on your remaining %d item%s (%.0f%% total weight). Your current average is %.1f%% from %d graded item%s.",
			targetFinal, needed, ungradedCount, plural(ungradedCount), weightRemaining,
			currentAvg, gradedCount, plural(gradedCount))
	}

	return &GradeWhatIfResult{
		TargetFinalGrade:     targetFinal,
		CurrentWeightedAvg:   currentAvg,
		WeightCovered:        weightCovered,
		WeightRemaining:      weightRemaining,
		NeededAvgOnRemaining: clampPct(needed),
		Explanation:          explanation,
		Breakdown:            breakdown,
	}
}

type ScoreOnItemResult struct {
	ItemFound              bool
	ResultingFinalGrade    float64
	NeededOnOtherRemaining float64
	Explanation            string
}

// ScoreOnItem fixes one deliverable at a hypothetical score and recomputes
// the resulting final grade plus the average still needed on the other
// remaining items. ItemFound is false when itemID matches nothing.
func ScoreOnItem(courseItems []domain.Deliverable, itemID string, score, targetFinal float64) ScoreOnItemResult {
	var target *domain.Deliverable
	for i := range courseItems {
		if courseItems[i].ID == itemID {
			target = &courseItems[i]
			break
		}
	}
	if target == nil {
		return ScoreOnItemResult{Explanation: "Item not found"}
	}

	var gradedTotal, totalWeight, weightCovered float64
	var ungradedCount int
	for _, d := range courseItems {
		totalWeight += d.GradeWeight
		if d.ID == itemID {
			continue
		}
		if g := d.Grade(); g != nil {
			gradedTotal += *g * d.GradeWeight
			weightCovered += d.GradeWeight
		} else {
			ungradedCount++
		}
	}

	totalWithFixed := gradedTotal + score*target.GradeWeight
	weightCovered += target.GradeWeight
	weightRemaining := totalWeight - weightCovered

	var resulting float64
	if totalWeight > 0 {
		resulting = totalWithFixed / totalWeight
	}

	var neededOnOthers float64
	if weightRemaining > 0 {
		neededOnOthers = (targetFinal*totalWeight - totalWithFixed) / weightRemaining
	}

	var explanation string
	if weightRemaining == 0 {
		explanation = fmt.Sprintf(
			"If you score %.0f%% on %s, your final grade will be %.1f%%. This is your final grade since all items are accounted for.",
			score, target.Title, resulting)
	} else {
		explanation = fmt.Sprintf(
			"If you score %.0f%% on %s (%.0f%% weight), your final grade will be %.1f%%. To reach %.0f%%, you'd need an average of %.1f%% on the remaining %d item%s.",
			score, target.Title, target.GradeWeight, resulting, targetFinal,
			math.Max(0, neededOnOthers), ungradedCount, plural(ungradedCount))
	}

	return ScoreOnItemResult{
		ItemFound:              true,
		ResultingFinalGrade:    clampPct(resulting),
		NeededOnOtherRemaining: clampPct(neededOnOthers),
		Explanation:            explanation,
	}
}

type DropLowestResult struct {
	// Dropped is nil when the course has no graded items.
	Dropped       *domain.Deliverable
	NewFinalGrade float64
	GradeChange   float64
	Explanation   string
}

// DropLowest recomputes the final grade with the lowest-graded item and its
// weight removed. Ties on grade keep the earliest item.
func DropLowest(courseItems []domain.Deliverable) DropLowestResult {
	var lowest *domain.Deliverable
	var gradedTotal, totalWeight float64
	for i := range courseItems {
		d := &courseItems[i]
		totalWeight += d.GradeWeight
		if !d.HasGrade() {
			continue
		}
		gradedTotal += d.GradeValue() * d.GradeWeight
		if lowest == nil || d.GradeValue() < lowest.GradeValue() {
			lowest = d
		}
	}
	if lowest == nil {
		return DropLowestResult{Explanation: "No graded items to drop"}
	}

	var currentFinal float64
	if totalWeight > 0 {
		currentFinal = gradedTotal / totalWeight
	}

	newTotal := gradedTotal - lowest.GradeValue()*lowest.GradeWeight
	newWeight := totalWeight - lowest.GradeWeight
	var newFinal float64
	if newWeight > 0 {
		newFinal = newTotal / newWeight
	}
	change := newFinal - currentFinal

	dropped := *lowest
	return DropLowestResult{
		Dropped:       &dropped,
		NewFinalGrade: clampPct(newFinal),
		GradeChange:   change,
		Explanation: fmt.Sprintf(
			"Dropping your lowest item (%s, %.0f%%, %.0f%% weight) would change your final grade from %.1f%% to %.1f%% (%+.1f%%).",
			dropped.Title, dropped.GradeValue(), dropped.GradeWeight, currentFinal, newFinal, change),
	}
}

func clampPct(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
