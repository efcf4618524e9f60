// Package gui provides a native desktop shape editor using Fyne.
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"

	"inkpad/pkg/api"
)

// App represents the shape editor application.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	drawing    *api.Drawing

	editor    *Editor
	toolbar   *Toolbar
	statusBar *StatusBar
}

// NewApp creates a new shape editor application.
func NewApp() *App {
	a := &App{
		fyneApp: app.New(),
		drawing: api.New(),
	}

	a.fyneApp.Settings().SetTheme(theme.DarkTheme())
	a.mainWindow = a.fyneApp.NewWindow("Inkpad")
	a.mainWindow.Resize(fyne.NewSize(800, 800))

	return a
}

// Run starts the application.
func (a *App) Run() {
	a.buildUI()
	a.mainWindow.ShowAndRun()
}

// RunWithFile starts the application with a drawing already loaded.
func (a *App) RunWithFile(path string) {
	a.buildUI()

	// Load file after window is ready
	go func() {
		if err := a.loadFile(path); err != nil {
			dialog.ShowError(err, a.mainWindow)
		}
	}()

	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.editor = NewEditor(800, 800, a.drawing.Container())
	a.editor.OnStatus = a.setStatus

	a.statusBar = NewStatusBar()

	a.toolbar = NewToolbar()
	a.toolbar.OnOpen = a.openFile
	a.toolbar.OnSave = a.saveFile
	a.toolbar.OnExport = a.exportFile
	a.toolbar.OnClear = a.clearDrawing
	a.toolbar.OnResetView = a.editor.ResetView
	a.toolbar.OnZoomIn = a.editor.ZoomIn
	a.toolbar.OnZoomOut = a.editor.ZoomOut

	content := container.NewBorder(
		container.NewPadded(a.toolbar.Container()), // Top
		a.statusBar.Container(),                    // Bottom
		nil,                                        // Left
		nil,                                        // Right
		a.editor,                                   // Center
	)

	a.mainWindow.SetContent(content)

	// All shortcuts go to the editor; no focusable entry competes.
	a.mainWindow.Canvas().SetOnTypedKey(a.editor.HandleKey)
}

// setStatus refreshes the status bar after any editor action.
func (a *App) setStatus(msg string) {
	a.statusBar.SetStatus(msg)
	a.statusBar.SetShapeCount(a.drawing.ShapeCount())
	a.statusBar.SetZoom(int(a.editor.ZoomFactor()*100 + 0.5))
}

// openFile shows a file dialog and loads the selected drawing.
func (a *App) openFile() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()

		if err := a.loadFile(reader.URI().Path()); err != nil {
			dialog.ShowError(err, a.mainWindow)
		}
	}, a.mainWindow)
}

// loadFile loads a drawing file.
func (a *App) loadFile(path string) error {
	d, err := api.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open drawing: %w", err)
	}

	a.drawing = d
	a.editor.SetContainer(d.Container())
	a.mainWindow.SetTitle(fmt.Sprintf("Inkpad - %s", path))
	a.setStatus(fmt.Sprintf("loaded %d shapes", d.ShapeCount()))
	return nil
}

// saveFile shows a save dialog and writes the drawing.
func (a *App) saveFile() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if writer == nil {
			return // Cancelled
		}
		defer writer.Close()

		if err := a.drawing.Write(writer); err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		a.setStatus("saved " + writer.URI().Path())
	}, a.mainWindow)
}

// exportFile shows a save dialog and exports the drawing as an image,
// using the editor's current view.
func (a *App) exportFile() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if writer == nil {
			return // Cancelled
		}
		path := writer.URI().Path()
		writer.Close()

		opts := api.DefaultRenderOptions()
		opts.TranslationX, opts.TranslationY, opts.Rotation, opts.ScaleX, opts.ScaleY = a.editor.ViewParams()
		if err := a.drawing.Export(path, opts); err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		a.setStatus("exported " + path)
	}, a.mainWindow)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg"}))
	d.Show()
}

// clearDrawing removes every shape.
func (a *App) clearDrawing() {
	a.drawing.Clear()
	a.editor.Redraw()
	a.setStatus("cleared")
}
