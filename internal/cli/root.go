package cli

import (
	"strings"

	"github.com/natbrooks/orbit/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Courses      service.CourseService
	Deliverables service.DeliverableService
	Settings     service.SettingsService
	Dashboard    service.DashboardService
	Simulator    service.SimulatorService
	Planner      service.PlannerService

	// IsInteractive reports whether stdin is a terminal; interactive
	// prompts are skipped when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "orbit" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "orbit",
		Short: "Coursework analytics and planning",
	}

	// Accept flags case-insensitively (--Course == --course).
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ToLower(name))
	})

	root.AddCommand(
		newCourseCmd(app),
		newDeliverableCmd(app),
		newBudgetCmd(app),
		newDashboardCmd(app),
		newWhatIfCmd(app),
		newAllocateCmd(app),
		newPlanCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
