package compare

import (
	"log"
	"sync"

	"github.com/rustizarr/dashboard/internal/model"
)

// Mode selects how the two artwork variants are laid out
type Mode int

const (
	// ModePaired shows original and processed side by side
	ModePaired Mode = iota

	// ModeSlider stacks them with a draggable divider
	ModeSlider
)

// String returns the display name for a comparison mode
func (m Mode) String() string {
	switch m {
	case ModePaired:
		return "Paired"
	case ModeSlider:
		return "Slider"
	default:
		return "Unknown"
	}
}

// Divider position bounds and default, in percent of the container width
const (
	MinPosition     = 0.0
	MaxPosition     = 100.0
	DefaultPosition = 50.0
)

// Session is the state of one active comparison
type Session struct {
	Record   model.DisplayRecord
	Mode     Mode
	Position float64 // divider position, percent from the left edge
	Dragging bool
}

// Engine owns the comparison session for the currently selected record.
// At most one session is live; opening another replaces it. Every
// operation on a closed engine, and every position update that fails its
// preconditions, is a silent no-op rather than an error.
type Engine struct {
	mu       sync.RWMutex
	session  *Session
	onChange func(Session)
}

// NewEngine creates an engine with no active session
func NewEngine() *Engine {
	return &Engine{}
}

// SetChangeCallback sets the callback invoked after every state change
func (e *Engine) SetChangeCallback(callback func(Session)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onChange = callback
}

// Open starts a comparison session for a record. Only processed records
// have two artwork variants to compare, so pending records are rejected
// and any existing session is left untouched. Opening over a live session
// replaces it.
func (e *Engine) Open(record model.DisplayRecord) bool {
	if !record.Status.IsProcessed() {
		log.Printf("compare: rejected session for %s record %s", record.Status, record.ID)
		return false
	}

	e.mu.Lock()
	e.session = &Session{
		Record:   record,
		Mode:     ModePaired,
		Position: DefaultPosition,
	}
	session := *e.session
	e.mu.Unlock()

	e.notify(session)
	return true
}

// Close ends the active session, discarding its state
func (e *Engine) Close() {
	e.mu.Lock()
	e.session = nil
	e.mu.Unlock()
}

// Active returns true while a session is open
func (e *Engine) Active() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session != nil
}

// Session returns a copy of the active session, if any
func (e *Engine) Session() (Session, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.session == nil {
		return Session{}, false
	}
	return *e.session, true
}

// SetMode switches the layout mode. The divider position survives mode
// round trips so returning to the slider resumes where the user left off.
func (e *Engine) SetMode(mode Mode) {
	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return
	}
	e.session.Mode = mode
	session := *e.session
	e.mu.Unlock()

	e.notify(session)
}

// BeginDrag marks the divider as grabbed. Position updates only flow while
// this flag is set.
func (e *Engine) BeginDrag() {
	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return
	}
	e.session.Dragging = true
	e.mu.Unlock()
}

// EndDrag releases the divider
func (e *Engine) EndDrag() {
	e.mu.Lock()
	if e.session == nil {
		e.mu.Unlock()
		return
	}
	e.session.Dragging = false
	e.mu.Unlock()
}

// UpdatePosition moves the divider to the pointer's horizontal position,
// expressed as a clamped percentage of the container width. It mutates
// nothing unless a session is open in slider mode with an active drag and
// a positive container width; a zero-width container would otherwise turn
// the division into NaN.
func (e *Engine) UpdatePosition(pointerX, containerLeft, containerWidth float32) {
	e.mu.Lock()
	if e.session == nil || !e.session.Dragging || e.session.Mode != ModeSlider || containerWidth <= 0 {
		e.mu.Unlock()
		return
	}

	percent := float64(pointerX-containerLeft) / float64(containerWidth) * 100
	if percent < MinPosition {
		percent = MinPosition
	}
	if percent > MaxPosition {
		percent = MaxPosition
	}
	e.session.Position = percent
	session := *e.session
	e.mu.Unlock()

	e.notify(session)
}

// notify invokes the change callback if set
func (e *Engine) notify(session Session) {
	e.mu.RLock()
	callback := e.onChange
	e.mu.RUnlock()
	if callback != nil {
		callback(session)
	}
}

// BeforeWidthPercent returns how wide the clipped "before" layer must be,
// as a percentage of its own clip region, so that the visible crop shows
// the correct proportion of the source image. With the divider at
// position percent the clip region covers position percent of the
// container, so the layer inside it has to span 100/position*100 percent
// to line up with the full-bounds "after" layer underneath. At position 0
// the region has no width to fill and the scale is undefined, so 0 is
// returned instead.
func BeforeWidthPercent(position float64) float64 {
	if position <= 0 {
		return 0
	}
	return 100 / position * 100
}
