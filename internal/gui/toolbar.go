package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar provides file and view controls for the editor.
type Toolbar struct {
	container *fyne.Container

	// Callbacks
	OnOpen      func()
	OnSave      func()
	OnExport    func()
	OnClear     func()
	OnResetView func()
	OnZoomIn    func()
	OnZoomOut   func()
}

// NewToolbar creates a new toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.build()
	return t
}

func (t *Toolbar) build() {
	openBtn := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		if t.OnOpen != nil {
			t.OnOpen()
		}
	})

	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		if t.OnSave != nil {
			t.OnSave()
		}
	})

	exportBtn := widget.NewButtonWithIcon("Export", theme.DownloadIcon(), func() {
		if t.OnExport != nil {
			t.OnExport()
		}
	})

	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), func() {
		if t.OnClear != nil {
			t.OnClear()
		}
	})

	zoomOutBtn := widget.NewButtonWithIcon("", theme.ZoomOutIcon(), func() {
		if t.OnZoomOut != nil {
			t.OnZoomOut()
		}
	})

	zoomInBtn := widget.NewButtonWithIcon("", theme.ZoomInIcon(), func() {
		if t.OnZoomIn != nil {
			t.OnZoomIn()
		}
	})

	resetBtn := widget.NewButtonWithIcon("Reset View", theme.ViewRefreshIcon(), func() {
		if t.OnResetView != nil {
			t.OnResetView()
		}
	})

	t.container = container.NewHBox(
		openBtn,
		saveBtn,
		exportBtn,
		widget.NewSeparator(),
		clearBtn,
		widget.NewSeparator(),
		zoomOutBtn,
		zoomInBtn,
		resetBtn,
	)
}

// Container returns the toolbar container.
func (t *Toolbar) Container() *fyne.Container {
	return t.container
}

// StatusBar shows the last status message, the shape count and the
// current zoom.
type StatusBar struct {
	container  *fyne.Container
	label      *widget.Label
	countLabel *widget.Label
	zoomLabel  *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:      widget.NewLabel("Ready"),
		countLabel: widget.NewLabel("0 shapes"),
		zoomLabel:  widget.NewLabel("100%"),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.countLabel,
		widget.NewSeparator(),
		s.zoomLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetShapeCount updates the shape count display.
func (s *StatusBar) SetShapeCount(n int) {
	s.countLabel.SetText(fmt.Sprintf("%d shapes", n))
}

// SetZoom sets the zoom percentage display.
func (s *StatusBar) SetZoom(percent int) {
	s.zoomLabel.SetText(fmt.Sprintf("%d%%", percent))
}
