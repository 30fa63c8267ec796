package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"finder4/internal/browse"
	"finder4/internal/config"
	"finder4/internal/log"
	"finder4/pkg/types"
)

const columnWidth = 220

// App is the desktop host for the column browser: a path entry on top and
// one list widget per column below, rebuilt from the engine on every
// selection change. Window size and the current path are persisted to the
// configuration on close.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	cfgPath    string
	engine     *browse.Engine
	pathEntry  *widget.Entry
	columnsBox *fyne.Container
}

// NewApp creates a new GUI application
func NewApp(cfg *config.Config, cfgPath string, engine *browse.Engine) *App {
	fyneApp := app.NewWithID("io.github.finder4")

	window := fyneApp.NewWindow("finder4")
	window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	return &App{
		fyneApp:    fyneApp,
		mainWindow: window,
		cfg:        cfg,
		cfgPath:    cfgPath,
		engine:     engine,
	}
}

// Run builds the UI and enters the event loop. Blocks until the window
// closes.
func (a *App) Run() {
	a.pathEntry = widget.NewEntry()
	a.pathEntry.SetText(a.engine.Path())
	a.pathEntry.OnSubmitted = func(text string) {
		a.engine.SetSelectionFromPath(text)
		a.refresh()
	}

	a.columnsBox = container.NewHBox()
	a.refresh()

	content := container.NewBorder(
		a.pathEntry, nil, nil, nil,
		container.NewHScroll(a.columnsBox),
	)
	a.mainWindow.SetContent(content)

	a.mainWindow.SetCloseIntercept(func() {
		a.saveState()
		a.mainWindow.Close()
	})

	a.mainWindow.ShowAndRun()
}

// refresh rebuilds the column widgets from the engine's current snapshot.
func (a *App) refresh() {
	columns := a.engine.Columns()

	a.columnsBox.Objects = nil
	for _, column := range columns {
		a.columnsBox.Add(a.newColumnList(column))
	}
	a.columnsBox.Refresh()

	a.pathEntry.SetText(a.engine.Path())
}

// newColumnList renders one column as a fixed-width list widget.
func (a *App) newColumnList(column types.Column) fyne.CanvasObject {
	entries := column.Entries
	depth := column.Depth

	list := widget.NewList(
		func() int {
			return len(entries)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			entry := entries[id]
			name := entry.Name
			if entry.Dir && !entry.Parent {
				name += "/"
			}
			label.SetText(name)
		},
	)

	list.OnSelected = func(id widget.ListItemID) {
		entry := entries[id]
		if !entry.Navigable() {
			list.UnselectAll()
			return
		}
		a.engine.Select(depth, entry.Name)
		a.refresh()
	}

	if column.HasSelection() {
		list.Select(column.Selected)
	}

	height := a.mainWindow.Canvas().Size().Height - a.pathEntry.MinSize().Height
	if height < 200 {
		height = 200
	}
	return container.NewGridWrap(fyne.NewSize(columnWidth, height), list)
}

// saveState persists the window size hint and current path.
func (a *App) saveState() {
	size := a.mainWindow.Canvas().Size()
	a.cfg.Window.Width = int(size.Width)
	a.cfg.Window.Height = int(size.Height)
	a.cfg.Browser.Path = a.engine.Path()

	if a.cfgPath == "" {
		return
	}
	if err := config.SaveConfig(a.cfg, a.cfgPath); err != nil {
		log.LogWithFields(log.F("path", a.cfgPath), log.F("error", err)).Errorf("Failed to save settings")
	}
}
