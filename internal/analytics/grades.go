package analytics

import (
	"fmt"

	"github.com/natbrooks/orbit/internal/domain"
)

type WeightedAverageResult struct {
	Average     float64
	TotalWeight float64
	Explanation []string
}

// WeightedAverage computes the grade average over items that carry a grade,
// weighted by each item's grade weight.
func WeightedAverage(items []domain.Deliverable) WeightedAverageResult {
	var graded []domain.Deliverable
	for _, d := range items {
		if d.HasGrade() {
			graded = append(graded, d)
		}
	}
	if len(graded) == 0 {
		return WeightedAverageResult{Explanation: []string{"No graded deliverables yet"}}
	}

	var weightedTotal, totalWeight float64
	for _, d := range graded {
		weightedTotal += d.GradeValue() * d.GradeWeight
		totalWeight += d.GradeWeight
	}
	var average float64
	if totalWeight > 0 {
		average = weightedTotal / totalWeight
	}

	return WeightedAverageResult{
		Average:     average,
		TotalWeight: totalWeight,
		Explanation: []string{
			fmt.Sprintf("Based on %d deliverable%s with recorded grades", len(graded), plural(len(graded))),
			fmt.Sprintf("Representing %.0f%% of total course weight", totalWeight),
		},
	}
}

// ProjectedFinal blends recorded grades with targets across all items in
// scope: graded items contribute their grade, ungraded items their target
// grade (or defaultTarget), each weighted, divided by the total weight
// present. Zero when no weight exists.
func ProjectedFinal(items []domain.Deliverable, defaultTarget float64) float64 {
	var blendedTotal, totalWeight float64
	for _, d := range items {
		totalWeight += d.GradeWeight
		if g := d.Grade(); g != nil {
			blendedTotal += *g * d.GradeWeight
		} else {
			blendedTotal += domain.Float64FromPtrWithDefault(defaultTarget, d.TargetGrade) * d.GradeWeight
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return blendedTotal / totalWeight
}

// TrackStatus compares a projected final grade against the target.
func TrackStatus(projected, target float64) domain.TrackingStatus {
	switch {
	case projected >= target:
		return domain.TrackOnTrack
	case projected >= target-5:
		return domain.TrackSlightlyBehind
	default:
		return domain.TrackAtRisk
	}
}

// NextGradeHint tells the student what they need on their heaviest ungraded
// item to stay on target. The formula assumes weights summing to 100, which
// is how courses are normally entered.
func NextGradeHint(items []domain.Deliverable, target float64) string {
	var next *domain.Deliverable
	for i := range items {
		if items[i].HasGrade() {
			continue
		}
		if next == nil || items[i].GradeWeight > next.GradeWeight {
			next = &items[i]
		}
	}
	if next == nil {
		return "All deliverables graded."
	}

	var gradedTotal, weightCovered float64
	for _, d := range items {
		if g := d.Grade(); g != nil {
			gradedTotal += *g * d.GradeWeight
			weightCovered += d.GradeWeight
		}
	}
	if weightCovered == 0 {
		return fmt.Sprintf("No grades recorded yet. Aim for %.0f%% on %s (%.0f%% weight) to start on target.",
			target, next.Title, next.GradeWeight)
	}
	if next.GradeWeight == 0 {
		return fmt.Sprintf("%s carries no grade weight; your average stands at %.1f%%.",
			next.Title, gradedTotal/weightCovered)
	}

	needed := (target*100 - gradedTotal) / next.GradeWeight
	switch {
	case needed > 100:
		return fmt.Sprintf("Your %.0f%% target is difficult: you'd need %.1f%% on %s (%.0f%% weight).",
			target, needed, next.Title, next.GradeWeight)
	case needed < 0:
		return fmt.Sprintf("Target secured: even 0%% on %s keeps you at %.0f%%.", next.Title, target)
	default:
		return fmt.Sprintf("You need about %.1f%% on %s (%.0f%% weight) to reach %.0f%%.",
			needed, next.Title, next.GradeWeight, target)
	}
}
