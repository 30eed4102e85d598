package teaui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"tableflip.dev/corkboard/pkg/interaction"
)

const helpText = "n new · d dark · esc done · q quit"

func (m *Model) View() string {
	if m.termWidth <= 0 || m.termHeight <= 0 {
		return ""
	}
	c := newCanvas(m.termWidth, m.termHeight)

	b := m.boardRect()
	c.fill(int(b.X), int(b.Y), int(b.Width), int(b.Height), ' ', c.style(m.theme.Board))
	for _, pl := range m.stack() {
		m.drawNote(c, pl)
	}

	// Header and status are drawn last so notes never cover them.
	c.fill(0, 0, m.termWidth, 1, ' ', 0)
	title := " corkboard "
	c.text(0, 0, title, c.style(m.theme.Header.Title), m.termWidth)
	helpW := runewidth.StringWidth(helpText)
	if m.termWidth-runewidth.StringWidth(title)-helpW-1 >= 0 {
		c.text(m.termWidth-helpW-1, 0, helpText, c.style(m.theme.Header.Help), helpW)
	}
	if m.termHeight > 1 {
		c.fill(0, m.termHeight-1, m.termWidth, 1, ' ', 0)
		c.text(1, m.termHeight-1, m.status(), m.statusStyle(c), m.termWidth-1)
	}
	return c.String()
}

func (m *Model) status() string {
	if m.err != nil {
		return "save failed: " + m.err.Error()
	}
	return fmt.Sprintf("%d notes · %s input · cursor %s", m.board.Len(), m.opts.Source, m.cursor())
}

func (m *Model) statusStyle(c *canvas) int {
	if m.err != nil {
		return c.style(m.theme.Footer.Error)
	}
	return c.style(m.theme.Footer.Status)
}

func (m *Model) drawNote(c *canvas, pl placed) {
	x, y := int(pl.rect.X), int(pl.rect.Y)
	w, h := int(pl.rect.Width), int(pl.rect.Height)

	st := m.theme.ForNote(pl.ctl.Tilt(), pl.ctl.Mode() != interaction.Idle)
	paper := c.style(st.Paper)
	border := c.style(st.Border)

	c.fill(x, y, w, h, ' ', paper)
	for col := x + 1; col < x+w-1; col++ {
		c.set(col, y, '─', border)
		c.set(col, y+h-1, '─', border)
	}
	for row := y + 1; row < y+h-1; row++ {
		c.set(x, row, '│', border)
		c.set(x+w-1, row, '│', border)
	}
	c.set(x, y, '╭', border)
	c.set(x+w-1, y, '╮', border)
	c.set(x, y+h-1, '╰', border)
	c.set(x+w-1, y+h-1, '╯', border)
	c.set(x+w-2, y, '×', c.style(st.Delete))

	innerW, innerH := w-2, h-2
	if m.editing && m.editID == pl.note.ID {
		for i, line := range strings.Split(m.editor.View(), "\n") {
			if i >= innerH {
				break
			}
			c.place(x+1, y+1+i, line, innerW)
		}
		return
	}
	if strings.TrimSpace(pl.note.Content) == "" {
		c.text(x+1, y+1, placeholder, c.style(st.Placeholder), innerW)
		return
	}
	for i, line := range noteLines(pl.note.Content, innerW, innerH) {
		c.text(x+1, y+1+i, line, paper, innerW)
	}
}

// noteLines wraps content into at most h lines of width w. Overflow is
// marked with an ellipsis on the last visible line.
func noteLines(content string, w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}
	content = strings.ReplaceAll(content, "\t", "    ")
	lines := strings.Split(wrap.String(wordwrap.String(content, w), w), "\n")
	if len(lines) > h {
		lines = lines[:h]
		last := strings.TrimRight(lines[h-1], " ") + "…"
		lines[h-1] = truncate.StringWithTail(last, uint(w), "…")
	}
	return lines
}
