// Package teaui hosts the corkboard as a Bubble Tea program.
//
// The terminal is the document: the board fills the screen between a
// header and a status row, every note is drawn as a bordered card, and
// pointer input arrives as mouse events in cell coordinates.
package teaui

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"tableflip.dev/corkboard/pkg/board"
	"tableflip.dev/corkboard/pkg/interaction"
	"tableflip.dev/corkboard/pkg/logging"
	"tableflip.dev/corkboard/pkg/note"
	"tableflip.dev/corkboard/pkg/tui/theme"
)

const (
	DefaultNoteWidth  = 24
	DefaultNoteHeight = 7

	minNoteWidth  = 6
	minNoteHeight = 3

	placeholder = "Write your note here..."

	// pressGap is how long the pointer may stay silent with the button held
	// before the next press is taken as a new one. Terminals drop the
	// release when the button is let go outside the window.
	pressGap = 2 * time.Second
)

// Options configure the board UI.
type Options struct {
	Source     interaction.Source
	NoteWidth  int
	NoteHeight int
	Logger     *zerolog.Logger
	// Rand draws note tilts; math/rand when nil.
	Rand func() float64
	// Clock times pointer reports; time.Now when nil.
	Clock func() time.Time
}

// Model contains UI state
type Model struct {
	board *board.Board
	opts  Options
	log   zerolog.Logger
	theme theme.Theme

	doc  *interaction.Document
	ctls map[int64]*interaction.Controller

	editor  textarea.Model
	editing bool
	editID  int64
	pending tea.Cmd

	now        func() time.Time
	buttonDown bool
	lastReport time.Time

	termWidth  int
	termHeight int
	err        error
}

// New builds the UI for b. Controllers are created for every note on the
// board.
func New(b *board.Board, opts Options) *Model {
	opts.NoteWidth = sizeOr(opts.NoteWidth, DefaultNoteWidth, minNoteWidth)
	opts.NoteHeight = sizeOr(opts.NoteHeight, DefaultNoteHeight, minNoteHeight)

	m := &Model{
		board: b,
		opts:  opts,
		log:   logging.OrNop(opts.Logger),
		theme: theme.Apply(b.DarkMode()),
		doc:   interaction.NewDocument(),
		ctls:  make(map[int64]*interaction.Controller),
		now:   opts.Clock,
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.editor = newEditor()
	m.editor.Blur()
	m.reconcile()
	return m
}

func sizeOr(v, def, min int) int {
	switch {
	case v == 0:
		return def
	case v < min:
		return min
	default:
		return v
	}
}

func newEditor() textarea.Model {
	ta := textarea.New()
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.EndOfBufferCharacter = ' '
	ta.Placeholder = placeholder
	return ta
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.reconcile()
	if m.pending != nil {
		cmds = append(cmds, m.pending)
		m.pending = nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if m.editing {
		if msg.Type == tea.KeyEsc {
			m.blurEditor()
			return nil
		}
		before := m.editor.Value()
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if v := m.editor.Value(); v != before {
			if ctl := m.ctls[m.editID]; ctl != nil {
				ctl.ReportContent(v)
			}
		}
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "esc":
		// Also recovers a press sequence whose release was lost: the next
		// report is a fresh press.
		m.doc.Dispatch(interaction.Event{Kind: interaction.Cancel, Source: m.opts.Source})
		m.buttonDown = false
	case "n", "a":
		n, err := m.board.AddNote()
		m.report(err)
		m.log.Debug().Int64("id", n.ID).Msg("note added")
	case "d":
		dark, err := m.board.ToggleDarkMode()
		m.report(err)
		m.theme = theme.Apply(dark)
		if m.editing {
			if ctl := m.ctls[m.editID]; ctl != nil {
				m.styleEditor(ctl.Tilt())
			}
		}
	}
	return nil
}

// handleMouse turns terminal mouse reports into controller events. The
// terminal reports held-button motion as further presses, so only the first
// report of a press sequence is a pointer-down; the rest are moves.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := interaction.Point{X: float64(msg.X), Y: float64(msg.Y)}
	ev := interaction.Event{Source: m.opts.Source, Point: p}

	now := m.now()
	stale := m.buttonDown && now.Sub(m.lastReport) > pressGap
	m.lastReport = now

	switch msg.Type {
	case tea.MouseLeft:
		if m.buttonDown && !stale {
			if m.doc.Active() {
				ev.Kind = interaction.Move
				m.doc.Dispatch(ev)
			}
			return
		}
		if stale && m.doc.Active() {
			// The release of the previous sequence never arrived.
			m.doc.Dispatch(interaction.Event{Kind: interaction.Cancel, Source: m.opts.Source})
		}
		m.buttonDown = true
		ev.Kind = interaction.Down
		m.press(ev)
	case tea.MouseMotion:
		ev.Kind = interaction.Move
		m.doc.Dispatch(ev)
	case tea.MouseRelease:
		m.buttonDown = false
		ev.Kind = interaction.Up
		m.doc.Dispatch(ev)
	}
}

// press routes a pointer-down to the topmost note under it. Any press that
// does not land on the edited note's text field takes focus away from it.
func (m *Model) press(ev interaction.Event) {
	hit, target, ok := m.hitTest(ev.Point)
	if ok {
		consumed := hit.ctl.PointerDown(ev, target)
		m.log.Debug().
			Int64("id", hit.note.ID).
			Bool("consumed", consumed).
			Str("mode", hit.ctl.Mode().String()).
			Msg("pointer down")
		if consumed && target == interaction.TextField {
			m.pending = m.focusEditor(hit.note.ID)
		}
	}
	if m.editing && !(ok && target == interaction.TextField && hit.note.ID == m.editID) {
		m.blurEditor()
	}
}

// placed is a note with its controller and on-screen box.
type placed struct {
	note note.Note
	ctl  *interaction.Controller
	rect interaction.Rect
}

// stack returns the notes in draw order: by elevation, then insertion order.
func (m *Model) stack() []placed {
	notes := m.board.Notes()
	out := make([]placed, 0, len(notes))
	for _, n := range notes {
		ctl := m.ctls[n.ID]
		if ctl == nil {
			continue
		}
		out = append(out, placed{note: n, ctl: ctl, rect: m.rectFor(n)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ctl.Elevation() < out[j].ctl.Elevation()
	})
	return out
}

// hitTest finds the topmost note under p and the part of it that was hit.
// The delete control sits on the top border; the border is the drag surface
// and the interior is the text field.
func (m *Model) hitTest(p interaction.Point) (placed, interaction.Target, bool) {
	stack := m.stack()
	for i := len(stack) - 1; i >= 0; i-- {
		r := stack[i].rect
		if !r.Contains(p) {
			continue
		}
		local := p.Sub(r.TopLeft())
		switch {
		case local.X == r.Width-2 && local.Y == 0:
			return stack[i], interaction.DeleteControl, true
		case local.X >= 1 && local.X < r.Width-1 && local.Y >= 1 && local.Y < r.Height-1:
			return stack[i], interaction.TextField, true
		default:
			return stack[i], interaction.Surface, true
		}
	}
	return placed{}, interaction.Surface, false
}

func (m *Model) boardRect() interaction.Rect {
	h := m.termHeight - 2
	if h < 0 {
		h = 0
	}
	return interaction.Rect{X: 0, Y: 1, Width: float64(m.termWidth), Height: float64(h)}
}

// rectFor places n on screen. A stored position outside the current board
// (a smaller terminal, or a move from the command line) is pinned to the
// board edge so the note stays visible and draggable.
func (m *Model) rectFor(n note.Note) interaction.Rect {
	b := m.boardRect()
	r := interaction.Rect{
		Width:  float64(m.opts.NoteWidth),
		Height: float64(m.opts.NoteHeight),
	}
	at := interaction.Point{X: b.X + n.Position.X, Y: b.Y + n.Position.Y}
	pos := interaction.DragPosition(at, interaction.Point{}, b, r)
	r.X = b.X + math.Round(pos.X)
	r.Y = b.Y + math.Round(pos.Y)
	return r
}

// reconcile keeps exactly one controller per note on the board.
func (m *Model) reconcile() {
	live := make(map[int64]bool, m.board.Len())
	for _, n := range m.board.Notes() {
		live[n.ID] = true
		if _, ok := m.ctls[n.ID]; !ok {
			m.ctls[n.ID] = m.newController(n.ID)
		}
	}
	for id, ctl := range m.ctls {
		if live[id] {
			continue
		}
		ctl.Destroy()
		delete(m.ctls, id)
		if m.editing && m.editID == id {
			m.editor.Blur()
			m.editing = false
		}
		m.log.Debug().Int64("id", id).Msg("controller destroyed")
	}
}

func (m *Model) newController(id int64) *interaction.Controller {
	geom := interaction.GeometryFunc(func() (interaction.Rect, interaction.Rect) {
		n, _ := m.board.Note(id)
		return m.boardRect(), m.rectFor(n)
	})
	return interaction.New(interaction.Config{
		ID:       id,
		Source:   m.opts.Source,
		Document: m.doc,
		Geometry: geom,
		Callbacks: interaction.Callbacks{
			PositionChanged: func(id int64, pos note.Position) {
				m.report(m.board.UpdatePosition(id, pos))
			},
			ContentChanged: func(id int64, content string) {
				m.report(m.board.UpdateContent(id, content))
			},
			Delete: func(id int64) {
				m.report(m.board.DeleteNote(id))
			},
			Focus: func(id int64) {
				m.pending = m.focusEditor(id)
			},
		},
		Rand: m.opts.Rand,
	})
}

// report records the outcome of the latest write for the status row.
func (m *Model) report(err error) {
	m.err = err
}

// focusEditor opens the text field of note id, moving focus away from any
// other note.
func (m *Model) focusEditor(id int64) tea.Cmd {
	n, ok := m.board.Note(id)
	ctl := m.ctls[id]
	if !ok || ctl == nil {
		return nil
	}
	if m.editing {
		if m.editID == id {
			return nil
		}
		m.blurEditor()
	}
	if ctl.Mode() != interaction.Editing {
		ctl.ActivateText()
	}
	m.editing, m.editID = true, id

	m.styleEditor(ctl.Tilt())
	m.editor.SetWidth(m.opts.NoteWidth - 2)
	m.editor.SetHeight(m.opts.NoteHeight - 2)
	m.editor.SetValue(n.Content)
	return m.editor.Focus()
}

func (m *Model) blurEditor() {
	if !m.editing {
		return
	}
	m.editor.Blur()
	if ctl := m.ctls[m.editID]; ctl != nil {
		ctl.Blur()
	}
	m.editing = false
}

func (m *Model) styleEditor(tilt float64) {
	st := m.theme.ForNote(tilt, true)
	style := textarea.Style{
		Base:        st.Paper,
		CursorLine:  st.Paper,
		EndOfBuffer: st.Paper,
		Placeholder: st.Placeholder,
		Prompt:      st.Paper,
		Text:        st.Paper,
	}
	m.editor.FocusedStyle = style
	m.editor.BlurredStyle = style
}

// cursor names the pointer affordance of the interaction in progress.
func (m *Model) cursor() string {
	if m.editing {
		return "text"
	}
	current := "default"
	for _, ctl := range m.ctls {
		if ctl.Mode() == interaction.Dragging {
			return ctl.Cursor()
		}
		current = ctl.Cursor()
	}
	return current
}

// Close destroys every controller, releasing document listeners.
func (m *Model) Close() {
	for id, ctl := range m.ctls {
		ctl.Destroy()
		delete(m.ctls, id)
	}
	m.editing = false
}

// Run launches the interactive board.
func Run(ctx context.Context, b *board.Board, opts Options) error {
	m := New(b, opts)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	return nil
}
