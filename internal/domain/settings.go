package domain

const (
	DefaultWeeklyBudgetHours = 30.0
)

// Settings holds the single-row workspace configuration.
type Settings struct {
	WeeklyBudgetHours  float64
	DefaultTargetGrade float64
}

func DefaultSettings() Settings {
	return Settings{
		WeeklyBudgetHours:  DefaultWeeklyBudgetHours,
		DefaultTargetGrade: DefaultTargetGrade,
	}
}
