package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/rustizarr/dashboard/internal/compare"
	"github.com/rustizarr/dashboard/internal/library"
	"github.com/rustizarr/dashboard/internal/model"
)

// CompareView renders the two artwork variants of a processed record in
// either paired or slider layout, driven by the comparison engine. The
// widget forwards pointer input to the engine and redraws from whatever
// session state the engine reports back.
type CompareView struct {
	widget.BaseWidget

	engine       *compare.Engine
	backend      library.Backend
	localization *Localization

	// Paired layout
	pairedBefore *canvas.Image
	pairedAfter  *canvas.Image
	paired       *fyne.Container

	// Slider layout: the processed image fills the bounds and the original
	// sits above it inside a clip region that follows the divider
	sliderAfter  *canvas.Image
	sliderBefore *canvas.Image
	clip         *container.Scroll
	divider      *canvas.Rectangle
	slider       *fyne.Container
}

// Interface conformance for pointer input
var _ fyne.Draggable = (*CompareView)(nil)
var _ desktop.Mouseable = (*CompareView)(nil)
var _ mobile.Touchable = (*CompareView)(nil)

// NewCompareView creates a comparison view bound to the engine
func NewCompareView(engine *compare.Engine, backend library.Backend, localization *Localization) *CompareView {
	cv := &CompareView{
		engine:       engine,
		backend:      backend,
		localization: localization,
	}
	cv.ExtendBaseWidget(cv)
	cv.createUI()
	return cv
}

// createUI creates the image layers for both layouts
func (cv *CompareView) createUI() {
	newImage := func() *canvas.Image {
		img := canvas.NewImageFromResource(nil)
		img.FillMode = canvas.ImageFillContain
		return img
	}

	// Paired layout: original left, processed right, with captions
	cv.pairedBefore = newImage()
	cv.pairedAfter = newImage()

	beforeCaption := widget.NewLabel(cv.localization.GetText(KeyOriginal))
	beforeCaption.Alignment = fyne.TextAlignCenter
	afterCaption := widget.NewLabel(cv.localization.GetText(KeyProcessed))
	afterCaption.Alignment = fyne.TextAlignCenter

	cv.paired = container.NewGridWithColumns(2,
		container.NewBorder(nil, beforeCaption, nil, nil, cv.pairedBefore),
		container.NewBorder(nil, afterCaption, nil, nil, cv.pairedAfter),
	)

	// Slider layout: images are stretched so both layers line up exactly,
	// and the original is cropped by the clip region at the divider
	cv.sliderAfter = newImage()
	cv.sliderAfter.FillMode = canvas.ImageFillStretch
	cv.sliderBefore = newImage()
	cv.sliderBefore.FillMode = canvas.ImageFillStretch

	cv.clip = container.NewScroll(container.NewWithoutLayout(cv.sliderBefore))
	cv.clip.Direction = container.ScrollNone

	cv.divider = canvas.NewRectangle(color.White)

	cv.slider = container.NewWithoutLayout(cv.sliderAfter, cv.clip, cv.divider)
}

// SetRecord points the view at a record and loads both artwork variants in
// the background. Stale loads are harmless: they only ever set image
// resources for the record that requested them.
func (cv *CompareView) SetRecord(record model.DisplayRecord) {
	beforeURL := cv.backend.OriginalImageURL(record.ID)
	afterURL := cv.backend.ImageURL(record.ID)

	go func() {
		before, err := fyne.LoadResourceFromURLString(beforeURL)
		if err != nil {
			log.Printf("compare view: loading original artwork for %s failed: %v", record.ID, err)
		}
		after, err := fyne.LoadResourceFromURLString(afterURL)
		if err != nil {
			log.Printf("compare view: loading processed artwork for %s failed: %v", record.ID, err)
		}

		fyne.Do(func() {
			current, ok := cv.engine.Session()
			if !ok || current.Record.ID != record.ID {
				return
			}
			cv.pairedBefore.Resource = before
			cv.sliderBefore.Resource = before
			cv.pairedAfter.Resource = after
			cv.sliderAfter.Resource = after
			cv.Refresh()
		})
	}()
}

// MouseDown grabs the divider and jumps it to the pointer
func (cv *CompareView) MouseDown(event *desktop.MouseEvent) {
	cv.engine.BeginDrag()
	cv.engine.UpdatePosition(event.Position.X, 0, cv.Size().Width)
}

// MouseUp releases the divider
func (cv *CompareView) MouseUp(event *desktop.MouseEvent) {
	cv.engine.EndDrag()
}

// Dragged moves the divider with the pointer
func (cv *CompareView) Dragged(event *fyne.DragEvent) {
	cv.engine.UpdatePosition(event.Position.X, 0, cv.Size().Width)
}

// DragEnd releases the divider
func (cv *CompareView) DragEnd() {
	cv.engine.EndDrag()
}

// TouchDown grabs the divider for touch input
func (cv *CompareView) TouchDown(event *mobile.TouchEvent) {
	cv.engine.BeginDrag()
	cv.engine.UpdatePosition(event.Position.X, 0, cv.Size().Width)
}

// TouchUp releases the divider
func (cv *CompareView) TouchUp(event *mobile.TouchEvent) {
	cv.engine.EndDrag()
}

// TouchCancel releases the divider
func (cv *CompareView) TouchCancel(event *mobile.TouchEvent) {
	cv.engine.EndDrag()
}

// CreateRenderer creates the widget renderer
func (cv *CompareView) CreateRenderer() fyne.WidgetRenderer {
	return &compareViewRenderer{view: cv}
}

// compareViewRenderer lays out whichever mode the engine session selects
type compareViewRenderer struct {
	view *CompareView
}

// Layout arranges the active mode's layers
func (r *compareViewRenderer) Layout(size fyne.Size) {
	cv := r.view
	session, ok := cv.engine.Session()
	if !ok {
		cv.paired.Hide()
		cv.slider.Hide()
		return
	}

	switch session.Mode {
	case compare.ModeSlider:
		cv.paired.Hide()
		cv.slider.Show()
		r.layoutSlider(size, session.Position)
	default:
		cv.slider.Hide()
		cv.paired.Show()
		cv.paired.Resize(size)
		cv.paired.Move(fyne.NewPos(0, 0))
	}
}

// layoutSlider positions the stacked layers for the given divider position.
// The processed image spans the full bounds; the clip region covers the
// left portion up to the divider, and the original inside it is scaled back
// up so both layers align pixel for pixel.
func (r *compareViewRenderer) layoutSlider(size fyne.Size, position float64) {
	cv := r.view

	cv.slider.Resize(size)
	cv.slider.Move(fyne.NewPos(0, 0))

	cv.sliderAfter.Resize(size)
	cv.sliderAfter.Move(fyne.NewPos(0, 0))

	clipWidth := size.Width * float32(position) / 100
	cv.clip.Resize(fyne.NewSize(clipWidth, size.Height))
	cv.clip.Move(fyne.NewPos(0, 0))

	beforeWidth := clipWidth * float32(compare.BeforeWidthPercent(position)) / 100
	cv.sliderBefore.Resize(fyne.NewSize(beforeWidth, size.Height))
	cv.sliderBefore.Move(fyne.NewPos(0, 0))

	dividerX := clipWidth - DividerWidth/2
	if dividerX < 0 {
		dividerX = 0
	}
	cv.divider.Resize(fyne.NewSize(DividerWidth, size.Height))
	cv.divider.Move(fyne.NewPos(dividerX, 0))
}

// MinSize returns the minimum size
func (r *compareViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(RowMinWidth, CompareImageHeight)
}

// Refresh redraws the layers for the current session state
func (r *compareViewRenderer) Refresh() {
	r.Layout(r.view.Size())
	r.view.paired.Refresh()
	r.view.slider.Refresh()
}

// Objects returns the layer containers
func (r *compareViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.paired, r.view.slider}
}

// Destroy cleans up the renderer
func (r *compareViewRenderer) Destroy() {}
