// Package interaction holds the per-note drag and edit state machine.
//
// A Controller turns pointer input into clamped position reports and
// editing transitions. It never owns a note's position or content: it
// reports changes through Callbacks and the board feeds the result back.
package interaction

import (
	"math/rand"

	"tableflip.dev/corkboard/pkg/note"
)

// Mode is the interaction state of one note.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Editing
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

// Target is the part of a note a pointer-down landed on.
type Target int

const (
	Surface Target = iota
	DeleteControl
	TextField
)

// EventKind classifies pointer events.
type EventKind int

const (
	Down EventKind = iota
	Move
	Up
	Cancel
)

// Event is one pointer event in screen coordinates.
type Event struct {
	Kind   EventKind
	Source Source
	Point  Point
}

// Callbacks are how a Controller reports to the board. Nil callbacks are
// skipped.
type Callbacks struct {
	PositionChanged func(id int64, pos note.Position)
	ContentChanged  func(id int64, content string)
	Delete          func(id int64)
	// Focus asks the host to focus the note's text field after a tap.
	Focus func(id int64)
}

// Elevation values used for stacking.
const (
	ElevationIdle     = 1
	ElevationEditing  = 90
	ElevationDragging = 100
)

const maxTilt = 3.0

// Config wires a Controller to its note, document and host.
type Config struct {
	ID        int64
	Source    Source
	Document  *Document
	Geometry  Geometry
	Callbacks Callbacks
	// Rand returns values in [0, 1); math/rand.Float64 when nil.
	Rand func() float64
}

// Controller is the interaction state of exactly one rendered note.
type Controller struct {
	id     int64
	source Source
	doc    *Document
	geom   Geometry
	cb     Callbacks

	mode   Mode
	offset Point
	start  Point
	moved  bool
	handle *Handle
	tilt   float64
}

// New creates a Controller in Idle and draws its tilt.
func New(cfg Config) *Controller {
	r := cfg.Rand
	if r == nil {
		r = rand.Float64
	}
	doc := cfg.Document
	if doc == nil {
		doc = NewDocument()
	}
	return &Controller{
		id:     cfg.ID,
		source: cfg.Source,
		doc:    doc,
		geom:   cfg.Geometry,
		cb:     cfg.Callbacks,
		tilt:   r()*2*maxTilt - maxTilt,
	}
}

func (c *Controller) ID() int64 {
	return c.id
}

func (c *Controller) Mode() Mode {
	return c.mode
}

// DragOffset is the pointer position relative to the note's top-left corner
// captured when the current drag started.
func (c *Controller) DragOffset() Point {
	return c.offset
}

// Tilt is the cosmetic rotation in degrees, fixed for the Controller's
// lifetime.
func (c *Controller) Tilt() float64 {
	return c.tilt
}

// Elevation orders notes for drawing: dragging above editing above idle.
func (c *Controller) Elevation() int {
	switch c.mode {
	case Dragging:
		return ElevationDragging
	case Editing:
		return ElevationEditing
	default:
		return ElevationIdle
	}
}

// Cursor names the pointer affordance for the current mode.
func (c *Controller) Cursor() string {
	switch {
	case c.mode == Dragging:
		return "grabbing"
	case c.source == Touch:
		return "default"
	default:
		return "grab"
	}
}

// PointerDown handles a primary press on the note. It reports whether the
// press was consumed.
func (c *Controller) PointerDown(ev Event, target Target) bool {
	if ev.Source != c.source {
		return false
	}
	switch target {
	case DeleteControl:
		c.Delete()
		return true
	case TextField:
		c.ActivateText()
		return true
	}

	switch c.mode {
	case Dragging:
		return true
	case Editing:
		if c.source == Touch {
			return false
		}
		c.mode = Idle
	}

	c.offset = ev.Point.Sub(c.geom.Note().TopLeft())
	c.start = ev.Point
	c.moved = false
	c.mode = Dragging
	if c.handle == nil {
		c.handle = c.doc.Listen(c.onDocument)
	}
	return true
}

func (c *Controller) onDocument(ev Event) {
	if c.mode != Dragging || ev.Source != c.source {
		return
	}
	switch ev.Kind {
	case Move:
		c.drag(ev.Point)
	case Up:
		c.release(true)
	case Cancel:
		c.release(false)
	}
}

func (c *Controller) drag(p Point) {
	if p != c.start {
		c.moved = true
	}
	pos := DragPosition(p, c.offset, c.geom.Board(), c.geom.Note())
	if c.cb.PositionChanged != nil {
		c.cb.PositionChanged(c.id, pos)
	}
}

// release ends a drag. A completed touch drag that never moved is a tap and
// opens the editor.
func (c *Controller) release(completed bool) {
	c.stopListening()
	if completed && c.source == Touch && !c.moved {
		c.mode = Editing
		if c.cb.Focus != nil {
			c.cb.Focus(c.id)
		}
		return
	}
	c.mode = Idle
}

// ActivateText enters Editing because the text field was pressed or focused.
// A running drag is released first; a press on the text field is never a
// drag.
func (c *Controller) ActivateText() {
	if c.mode == Dragging {
		c.stopListening()
	}
	c.mode = Editing
}

// Blur leaves Editing when the text field loses focus.
func (c *Controller) Blur() {
	if c.mode == Editing {
		c.mode = Idle
	}
}

// ReportContent forwards the text field's current value. Every change is
// reported as it happens.
func (c *Controller) ReportContent(content string) {
	if c.cb.ContentChanged != nil {
		c.cb.ContentChanged(c.id, content)
	}
}

// Delete fires the delete callback regardless of mode. A running drag is
// released so no listener outlives the note.
func (c *Controller) Delete() {
	if c.mode == Dragging {
		c.stopListening()
		c.mode = Idle
	}
	if c.cb.Delete != nil {
		c.cb.Delete(c.id)
	}
}

// Destroy releases everything the Controller holds. It is safe to call in
// any mode and more than once.
func (c *Controller) Destroy() {
	c.stopListening()
	c.mode = Idle
}

func (c *Controller) stopListening() {
	if c.handle != nil {
		c.handle.Release()
		c.handle = nil
	}
}
