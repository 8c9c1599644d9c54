// Package grid implements the selection mode for priority matrices. It is
// a deliberate mode switch, not a deeper navigation level: drilling into a
// priority item hands control here until the user backs out.
package grid

import (
	"fmt"

	"github.com/softwatch/astroreview/internal/host"
)

// Model is a cursor over priority rows with a bounded weight per row.
// Weight changes are returned as commands; the model updates its local
// copy optimistically and the next store refresh reconciles it.
type Model struct {
	Title     string
	MaxWeight int

	rows []host.PriorityRow
	row  int
}

// New builds a grid over the given rows.
func New(title string, rows []host.PriorityRow, maxWeight int) *Model {
	if maxWeight <= 0 {
		maxWeight = 5
	}
	return &Model{
		Title:     title,
		MaxWeight: maxWeight,
		rows:      append([]host.PriorityRow(nil), rows...),
	}
}

// Empty reports whether the grid has no rows.
func (m *Model) Empty() bool {
	return len(m.rows) == 0
}

// Row returns the current cursor index, for rendering.
func (m *Model) Row() int {
	return m.row
}

// Rows returns a copy of the rows, for rendering.
func (m *Model) Rows() []host.PriorityRow {
	return append([]host.PriorityRow(nil), m.rows...)
}

// Enter announces the grid on entry.
func (m *Model) Enter() string {
	if m.Empty() {
		return fmt.Sprintf("%s, no priorities", m.Title)
	}
	return fmt.Sprintf("%s, %d priorities. %s", m.Title, len(m.rows), m.Position())
}

// Position describes the current row and weight.
func (m *Model) Position() string {
	if m.Empty() {
		return "No priorities"
	}
	row := m.rows[m.row]
	return fmt.Sprintf("%s, weight %d of %d, row %d of %d", row.Name, row.Weight, m.MaxWeight, m.row+1, len(m.rows))
}

// Down moves to the next row with wraparound. Returns the announcement, or
// "" when the grid is empty.
func (m *Model) Down() string {
	if m.Empty() {
		return ""
	}
	m.row = (m.row + 1) % len(m.rows)
	return m.Position()
}

// Up moves to the previous row with wraparound.
func (m *Model) Up() string {
	if m.Empty() {
		return ""
	}
	m.row--
	if m.row < 0 {
		m.row = len(m.rows) - 1
	}
	return m.Position()
}

// Increase raises the current row's weight by one, clamped at MaxWeight.
// Returns the command to dispatch and the announcement; a zero command
// means the weight was already at the bound.
func (m *Model) Increase() (host.Command, string) {
	return m.adjust(1)
}

// Decrease lowers the current row's weight by one, clamped at zero.
func (m *Model) Decrease() (host.Command, string) {
	return m.adjust(-1)
}

func (m *Model) adjust(delta int) (host.Command, string) {
	if m.Empty() {
		return host.Command{}, ""
	}
	row := &m.rows[m.row]
	next := row.Weight + delta
	if next < 0 || next > m.MaxWeight {
		return host.Command{}, fmt.Sprintf("%s, weight stays at %d", row.Name, row.Weight)
	}
	row.Weight = next
	cmd := host.Command{Verb: host.VerbPrioritySet, Target: row.ID, Value: next}
	return cmd, fmt.Sprintf("%s, weight %d", row.Name, next)
}
