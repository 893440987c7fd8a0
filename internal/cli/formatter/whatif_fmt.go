package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/natbrooks/orbit/internal/contract"
)

// FormatTargetSim formats a grade target simulation result.
func FormatTargetSim(resp *contract.TargetSimResponse) string {
	var b strings.Builder
	r := resp.Result

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		Bold(resp.CourseName),
		Dim(fmt.Sprintf("target %.0f%%", r.TargetFinalGrade))))

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Current average:"), FormatPct(r.CurrentWeightedAvg)))
	b.WriteString(fmt.Sprintf("%s %.0f%% graded, %.0f%% remaining\n",
		Dim("Weight:"), r.WeightCovered, r.WeightRemaining))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		Dim("Needed on remaining:"),
		neededStyle(r.NeededAvgOnRemaining).Render(FormatPct(r.NeededAvgOnRemaining))))

	if len(r.Breakdown) > 0 {
		headers := []string{"ITEM", "WEIGHT", "GRADE", "NEEDED"}
		rows := make([][]string, 0, len(r.Breakdown))
		for _, item := range r.Breakdown {
			grade := Dim("--")
			if item.CurrentGrade != nil {
				grade = StyleFg.Render(FormatPct(*item.CurrentGrade))
			}
			needed := Dim("--")
			if item.NeededGrade != nil {
				needed = neededStyle(*item.NeededGrade).Render(FormatPct(*item.NeededGrade))
			}
			rows = append(rows, []string{
				StyleFg.Render(item.Item),
				fmt.Sprintf("%.0f%%", item.Weight),
				grade,
				needed,
			})
		}
		b.WriteString(RenderTable(headers, rows))
		b.WriteString("\n")
	}

	b.WriteString(Dim(r.Explanation) + "\n")
	return RenderBox("What If: Target", b.String())
}

// FormatScoreSim formats a hypothetical-score simulation result.
func FormatScoreSim(resp *contract.ScoreSimResponse) string {
	var b strings.Builder
	r := resp.Result

	b.WriteString(Bold(resp.CourseName) + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Resulting final grade:"), Bold(FormatPct(r.ResultingFinalGrade))))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		Dim("Needed on other remaining:"),
		neededStyle(r.NeededOnOtherRemaining).Render(FormatPct(r.NeededOnOtherRemaining))))
	b.WriteString(Dim(r.Explanation) + "\n")

	return RenderBox("What If: Score", b.String())
}

// FormatDropSim formats a drop-lowest simulation result.
func FormatDropSim(resp *contract.DropSimResponse) string {
	var b strings.Builder
	r := resp.Result

	b.WriteString(Bold(resp.CourseName) + "\n\n")
	if r.Dropped != nil {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim("Dropping:"),
			StyleFg.Render(r.Dropped.Title),
			Dim(fmt.Sprintf("(%.0f%%, %.0f%% weight)", r.Dropped.GradeValue(), r.Dropped.GradeWeight))))
		b.WriteString(fmt.Sprintf("%s %s %s\n\n",
			Dim("New final grade:"),
			Bold(FormatPct(r.NewFinalGrade)),
			changeStyle(r.GradeChange).Render(fmt.Sprintf("(%+.1f%%)", r.GradeChange))))
	}
	b.WriteString(Dim(r.Explanation) + "\n")

	return RenderBox("What If: Drop Lowest", b.String())
}

// FormatAllocation formats an effort allocation plan.
func FormatAllocation(resp *contract.AllocateResponse) string {
	var b strings.Builder
	plan := resp.Plan

	for i, a := range plan.Allocations {
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(a.DeliverableTitle),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatHours(a.RecommendedHours)))))
		b.WriteString(fmt.Sprintf("   %s\n", Dim(a.Reasoning)))
		if i < len(plan.Allocations)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Total: %s", FormatHours(plan.TotalHours))) + "\n")
	b.WriteString(Dim(plan.Explanation) + "\n")

	return RenderBox("Effort Allocation", b.String())
}

func neededStyle(needed float64) lipgloss.Style {
	switch {
	case needed >= 100:
		return StyleRed
	case needed >= 85:
		return StyleYellow
	default:
		return StyleGreen
	}
}

func changeStyle(change float64) lipgloss.Style {
	if change < 0 {
		return StyleRed
	}
	return StyleGreen
}
