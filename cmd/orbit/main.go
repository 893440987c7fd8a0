package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/natbrooks/orbit/internal/cli"
	"github.com/natbrooks/orbit/internal/db"
	"github.com/natbrooks/orbit/internal/repository"
	"github.com/natbrooks/orbit/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.orbit/orbit.db
	dbPath := os.Getenv("ORBIT_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".orbit", "orbit.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	courseRepo := repository.NewSQLiteCourseRepo(database)
	deliverableRepo := repository.NewSQLiteDeliverableRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Optional use-case logging, enabled with ORBIT_LOG=1.
	var observers []service.UseCaseObserver
	if os.Getenv("ORBIT_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Courses:      service.NewCourseService(courseRepo, uow),
		Deliverables: service.NewDeliverableService(deliverableRepo, courseRepo),
		Settings:     service.NewSettingsService(settingsRepo),
		Dashboard:    service.NewDashboardService(courseRepo, deliverableRepo, settingsRepo, observers...),
		Simulator:    service.NewSimulatorService(courseRepo, deliverableRepo),
		Planner:      service.NewPlannerService(courseRepo, deliverableRepo, settingsRepo),
	}

	// Detect interactive terminal for confirmation prompts.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
