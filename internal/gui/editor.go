package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"inkpad/pkg/geometry"
	"inkpad/pkg/render"
	"inkpad/pkg/shape"
	"inkpad/pkg/view"
)

// axisExtent is how far the model-space axes extend from the origin.
const axisExtent = 100.0

// Editor is a custom widget that hosts the drawing surface. It owns a
// raster device and a view context, re-rasterizes the shape container
// on every refresh, and turns pointer and key events into drawing and
// view operations.
type Editor struct {
	widget.BaseWidget

	image  *canvas.Image
	raster *render.Raster
	vc     *view.Context

	shapes *shape.Container

	// Pending stroke: vertices tapped but not yet committed.
	stroke      []geometry.Point
	strokeColor geometry.Color

	// loopMode controls what a committed stroke becomes: closed shapes
	// (triangle, polygon) when on, chained lines when off.
	loopMode bool
	showAxes bool

	// OnStatus, when set, receives one-line status messages.
	OnStatus func(msg string)
}

// NewEditor creates an editor drawing into a surface of the given size.
func NewEditor(width, height int, shapes *shape.Container) *Editor {
	e := &Editor{
		shapes:      shapes,
		strokeColor: geometry.Black(),
		loopMode:    true,
		showAxes:    true,
	}
	e.ExtendBaseWidget(e)

	e.raster = render.NewRaster(width, height)
	e.vc = view.NewContext(e.raster)

	e.image = canvas.NewImageFromImage(e.raster.Image())
	e.image.FillMode = canvas.ImageFillContain
	e.image.ScaleMode = canvas.ImageScaleSmooth

	e.Redraw()
	return e
}

// SetContainer swaps the shape container the editor draws and edits.
func (e *Editor) SetContainer(shapes *shape.Container) {
	e.shapes = shapes
	e.stroke = nil
	e.Redraw()
}

// ViewParams returns the current view transform parameters.
func (e *Editor) ViewParams() (tx, ty, rot, sx, sy float64) {
	return e.vc.TranslationX(), e.vc.TranslationY(), e.vc.Rotation(), e.vc.ScaleX(), e.vc.ScaleY()
}

// ZoomFactor returns the horizontal scale relative to the default.
func (e *Editor) ZoomFactor() float64 {
	return e.vc.ScaleX() / view.DefaultScaleX
}

// Redraw re-rasterizes the container and the pending stroke.
func (e *Editor) Redraw() {
	e.raster.Clear()
	if e.showAxes {
		e.drawAxes()
	}
	e.shapes.Draw(e.raster, e.vc)
	e.drawStroke()

	e.image.Image = e.raster.Image()
	e.image.Refresh()
}

// drawAxes strokes the model-space x and y axes in light gray.
func (e *Editor) drawAxes() {
	e.raster.SetColor(geometry.Gray().Pixel())
	x0 := e.vc.ModelToDevice(geometry.NewPoint(-axisExtent, 0))
	x1 := e.vc.ModelToDevice(geometry.NewPoint(axisExtent, 0))
	e.raster.DrawLine(int(x0.X()), int(x0.Y()), int(x1.X()), int(x1.Y()))
	y0 := e.vc.ModelToDevice(geometry.NewPoint(0, -axisExtent))
	y1 := e.vc.ModelToDevice(geometry.NewPoint(0, axisExtent))
	e.raster.DrawLine(int(y0.X()), int(y0.Y()), int(y1.X()), int(y1.Y()))
}

// drawStroke previews the uncommitted vertices as open segments.
func (e *Editor) drawStroke() {
	if len(e.stroke) < 2 {
		return
	}
	e.raster.SetColor(e.strokeColor.Pixel())
	for i := 0; i+1 < len(e.stroke); i++ {
		a := e.vc.ModelToDevice(e.stroke[i])
		b := e.vc.ModelToDevice(e.stroke[i+1])
		e.raster.DrawLine(int(a.X()), int(a.Y()), int(b.X()), int(b.Y()))
	}
}

// Resize rebuilds the raster surface when the widget size changes,
// carrying the view parameters over to a context for the new surface.
func (e *Editor) Resize(size fyne.Size) {
	e.BaseWidget.Resize(size)

	w, h := int(size.Width), int(size.Height)
	if w < 1 || h < 1 {
		return
	}
	if w == e.raster.WindowWidth() && h == e.raster.WindowHeight() {
		return
	}

	tx, ty, rot, sx, sy := e.ViewParams()
	e.raster = render.NewRaster(w, h)
	e.vc = view.NewContext(e.raster)
	e.vc.SetTranslation(tx, ty)
	e.vc.SetRotation(rot)
	e.vc.SetScale(sx, sy)
	e.Redraw()
}

// CreateRenderer creates the renderer for this widget.
func (e *Editor) CreateRenderer() fyne.WidgetRenderer {
	return &editorRenderer{editor: e}
}

// Tapped adds a stroke vertex at the model point under the cursor.
func (e *Editor) Tapped(event *fyne.PointEvent) {
	p := e.vc.DeviceToModel(geometry.NewPoint(float64(event.Position.X), float64(event.Position.Y)))
	e.stroke = append(e.stroke, p)
	e.status(fmt.Sprintf("stroke: %d vertices (Enter commits, Esc cancels)", len(e.stroke)))
	e.Redraw()
}

// Dragged pans the view so the model stays under the cursor. The pan
// delta is computed in model space through the inverse transform.
func (e *Editor) Dragged(event *fyne.DragEvent) {
	p1 := geometry.NewPoint(float64(event.Position.X), float64(event.Position.Y))
	p0 := geometry.NewPoint(
		float64(event.Position.X-event.Dragged.DX),
		float64(event.Position.Y-event.Dragged.DY),
	)
	m1 := e.vc.DeviceToModel(p1)
	m0 := e.vc.DeviceToModel(p0)
	e.vc.Translate(m1.X()-m0.X(), m1.Y()-m0.Y())
	e.Redraw()
}

// DragEnd completes a pan gesture.
func (e *Editor) DragEnd() {}

// Scrolled zooms the view.
func (e *Editor) Scrolled(event *fyne.ScrollEvent) {
	factor := 1 + float64(event.Scrolled.DY)/100
	if factor < 0.5 {
		factor = 0.5
	}
	if factor > 2 {
		factor = 2
	}
	e.vc.Scale(factor, factor)
	e.status(fmt.Sprintf("zoom %.0f%%", e.ZoomFactor()*100))
	e.Redraw()
}

// ZoomIn scales the view up by 20%.
func (e *Editor) ZoomIn() {
	e.vc.Scale(1.2, 1.2)
	e.status(fmt.Sprintf("zoom %.0f%%", e.ZoomFactor()*100))
	e.Redraw()
}

// ZoomOut scales the view down by 20%.
func (e *Editor) ZoomOut() {
	e.vc.Scale(1/1.2, 1/1.2)
	e.status(fmt.Sprintf("zoom %.0f%%", e.ZoomFactor()*100))
	e.Redraw()
}

// ResetView restores the default translation, rotation and scale.
func (e *Editor) ResetView() {
	e.vc.ResetView()
	e.status("view reset")
	e.Redraw()
}

// HandleKey dispatches keyboard shortcuts.
func (e *Editor) HandleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyReturn, fyne.KeyEnter:
		e.commitStroke()
	case fyne.KeyEscape:
		e.cancelStroke()
	case fyne.KeyQ:
		e.vc.Rotate(-0.1)
		e.Redraw()
	case fyne.KeyE:
		e.vc.Rotate(0.1)
		e.Redraw()
	case fyne.KeyR:
		e.ResetView()
	case fyne.KeyA:
		e.showAxes = !e.showAxes
		e.Redraw()
	case fyne.KeyL:
		e.loopMode = !e.loopMode
		if e.loopMode {
			e.status("loop mode: closed shapes")
		} else {
			e.status("loop mode off: chained lines")
		}
	case fyne.KeyC:
		e.shapes.Erase()
		e.stroke = nil
		e.status("cleared")
		e.Redraw()
	case fyne.Key1:
		e.setStrokeColor("black", geometry.Black())
	case fyne.Key2:
		e.setStrokeColor("gray", geometry.Gray())
	case fyne.Key3:
		e.setStrokeColor("white", geometry.White())
	case fyne.Key4:
		e.setStrokeColor("red", geometry.Red())
	case fyne.Key5:
		e.setStrokeColor("green", geometry.Green())
	case fyne.Key6:
		e.setStrokeColor("blue", geometry.Blue())
	case fyne.Key7:
		e.setStrokeColor("cyan", geometry.Cyan())
	case fyne.Key8:
		e.setStrokeColor("magenta", geometry.Magenta())
	case fyne.Key9:
		e.setStrokeColor("yellow", geometry.Yellow())
	case fyne.Key0:
		e.setStrokeColor("random", geometry.Random())
	}
}

func (e *Editor) setStrokeColor(name string, c geometry.Color) {
	e.strokeColor = c
	e.status("color: " + name)
	e.Redraw()
}

// commitStroke turns the pending vertices into a shape: two vertices
// make a line; three or more make a triangle or polygon in loop mode,
// or a chain of lines otherwise.
func (e *Editor) commitStroke() {
	verts := e.stroke
	e.stroke = nil

	switch {
	case len(verts) < 2:
		e.status("stroke needs at least 2 vertices")
	case len(verts) == 2:
		e.shapes.Add(shape.NewLineWithColor(verts[0], verts[1], e.strokeColor))
		e.status("added line")
	case !e.loopMode:
		for i := 0; i+1 < len(verts); i++ {
			e.shapes.Add(shape.NewLineWithColor(verts[i], verts[i+1], e.strokeColor))
		}
		e.status(fmt.Sprintf("added %d lines", len(verts)-1))
	case len(verts) == 3:
		e.shapes.Add(shape.NewTriangleWithColor(verts[0], verts[1], verts[2], e.strokeColor))
		e.status("added triangle")
	default:
		e.shapes.Add(shape.NewPolygonWithColor(verts, e.strokeColor))
		e.status(fmt.Sprintf("added polygon with %d vertices", len(verts)))
	}
	e.Redraw()
}

func (e *Editor) cancelStroke() {
	if len(e.stroke) == 0 {
		return
	}
	e.stroke = nil
	e.status("stroke cancelled")
	e.Redraw()
}

func (e *Editor) status(msg string) {
	if e.OnStatus != nil {
		e.OnStatus(msg)
	}
}

// editorRenderer renders the editor widget.
type editorRenderer struct {
	editor *Editor
}

func (r *editorRenderer) Layout(size fyne.Size) {
	r.editor.image.Move(fyne.NewPos(0, 0))
	r.editor.image.Resize(size)
}

func (r *editorRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

func (r *editorRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.editor.image}
}

func (r *editorRenderer) Refresh() {
	r.editor.image.Refresh()
}

func (r *editorRenderer) Destroy() {}
