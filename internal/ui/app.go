// Package ui is the terminal front end for the conversation compass.
// It renders the tree through the engine's view contract and never
// reaches into tree internals.
package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"compass/internal/compass"
	"compass/internal/debug"
	"compass/internal/layout"
	"compass/internal/session"
	"compass/internal/ui/theme"
)

// World units per terminal cell. A 200x80 node box maps to 20x4 cells.
const (
	cellScaleX = 10.0
	cellScaleY = 20.0
)

const (
	minViewWidth  = 40
	minViewHeight = 10
	panStepX      = 4 * cellScaleX
	panStepY      = 2 * cellScaleY
	// defaultBranchLevels is how far ShowBranch reveals below the
	// current node when layout.branch-levels is not configured.
	defaultBranchLevels = 2
)

// inputMode says what the text input line is collecting.
type inputMode int

const (
	modeNone inputMode = iota
	modeUtterance
	modeKeyword
	modeSaveSession
	modeLoadSession
)

// Config configures the UI application.
type Config struct {
	Theme         string
	Strategy      layout.Strategy
	ForceRefine   bool
	BranchLevels  int
	OutputFormat  string
	SessionDBPath string
	Version       string
}

// App implements the Bubble Tea model for Compass.
type App struct {
	engine *compass.Engine

	// camera is the world coordinate at the viewport's top-left cell.
	camera layout.Point

	width  int
	height int
	ready  bool

	input textinput.Model
	mode  inputMode

	transcript      viewport.Model
	showTranscript  bool
	showMinimap     bool
	showHelp        bool
	plainTranscript bool
	branchLevels    int

	statusToast string
	lastError   string

	store       *session.Store
	sessionPath string
	version     string
}

// NewApp builds the UI model. The session database is opened lazily on
// first save or load, so a missing path only matters then.
func NewApp(cfg Config) (*App, error) {
	if cfg.Theme != "" && !theme.SetTheme(cfg.Theme) {
		return nil, fmt.Errorf("unknown theme %q (available: %s)",
			cfg.Theme, strings.Join(theme.Available(), ", "))
	}
	if cfg.Strategy == "" {
		cfg.Strategy = layout.Hierarchical
	}

	input := textinput.New()
	input.CharLimit = 400
	input.Width = 60

	levels := cfg.BranchLevels
	if levels <= 0 {
		levels = defaultBranchLevels
	}

	app := &App{
		engine:          compass.New(cfg.Strategy, cfg.ForceRefine),
		input:           input,
		showMinimap:     true,
		plainTranscript: cfg.OutputFormat == "plain",
		branchLevels:    levels,
		sessionPath:     cfg.SessionDBPath,
		version:         cfg.Version,
	}
	app.engine.Events().OnRecenter(func(id string) { app.centerOn(id) })
	app.engine.Events().OnError(func(err error) { app.lastError = err.Error() })
	return app, nil
}

// Engine exposes the underlying engine for collaborators feeding
// utterances from outside the key loop.
func (a *App) Engine() *compass.Engine {
	return a.engine
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// treeViewSize returns the cell dimensions of the tree pane, border
// excluded.
func (a *App) treeViewSize() (int, int) {
	w := a.width
	if a.showTranscript {
		w -= a.transcriptWidth()
	}
	w -= 2                // pane border
	h := a.height - 4 - 2 // header, footer, pane border
	if w < minViewWidth {
		w = minViewWidth
	}
	if h < minViewHeight {
		h = minViewHeight
	}
	return w, h
}

func (a *App) transcriptWidth() int {
	w := a.width / 3
	if w < 24 {
		w = 24
	}
	return w
}

// viewportWorldRect is the tree pane's visible area in world units,
// used for the minimap's viewport indicator.
func (a *App) viewportWorldRect() layout.Rect {
	w, h := a.treeViewSize()
	return layout.Rect{
		X: a.camera.X,
		Y: a.camera.Y,
		W: float64(w) * cellScaleX,
		H: float64(h) * cellScaleY,
	}
}

// worldToCell maps a world point to tree pane cell coordinates.
func (a *App) worldToCell(p layout.Point) (int, int) {
	return int((p.X - a.camera.X) / cellScaleX), int((p.Y - a.camera.Y) / cellScaleY)
}

// centerOn points the camera at the node's box center.
func (a *App) centerOn(id string) {
	for _, v := range a.engine.Nodes() {
		if v.ID != id {
			continue
		}
		w, h := a.treeViewSize()
		center := v.Rect.Center()
		a.camera = layout.Point{
			X: center.X - float64(w)/2*cellScaleX,
			Y: center.Y - float64(h)/2*cellScaleY,
		}
		return
	}
}

// openStore opens the session database on demand.
func (a *App) openStore() (*session.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	path := a.sessionPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir := filepath.Join(home, ".compass")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "sessions.db")
	}
	store, err := session.Open(context.Background(), path)
	if err != nil {
		return nil, err
	}
	debug.Logf("ui: session store ready at %s", path)
	a.store = store
	return store, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) setToast(msg string) tea.Cmd {
	a.statusToast = msg
	return scheduleToastTick()
}
