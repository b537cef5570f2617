package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/config"
	"compass/internal/debug"
	"compass/internal/layout"
	"compass/internal/ui"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	themeDefault := config.GetString(config.KeyTheme)
	strategyDefault := config.GetString(config.KeyLayoutStrategy)
	refineDefault := config.GetBool(config.KeyForceRefine)
	dbPathDefault := config.GetString(config.KeySessionDatabase)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	themeFlag := flag.String("theme", themeDefault, "Color theme name")
	strategyFlag := flag.String("layout", strategyDefault, "Layout strategy (hierarchical, radial)")
	refineFlag := flag.Bool("force-refine", refineDefault, "Enable the overlap-reduction layout pass")
	dbPathFlag := flag.String("db-path", dbPathDefault, "Path to the session database file")
	debugFlag := flag.Bool("debug", false, "Write debug output to ~/.compass/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	if err := debug.Init(*debugFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug log unavailable: %v\n", err)
	}
	defer debug.Close()

	strategy, err := layout.ParseStrategy(*strategyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCfg := ui.Config{
		Theme:         strings.TrimSpace(*themeFlag),
		Strategy:      strategy,
		ForceRefine:   *refineFlag,
		BranchLevels:  config.GetInt(config.KeyBranchLevels),
		OutputFormat:  config.GetString(config.KeyOutputFormat),
		SessionDBPath: strings.TrimSpace(*dbPathFlag),
		Version:       Version,
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	defer func() { _ = app.Close() }()
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
