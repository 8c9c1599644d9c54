package screens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review"
	"github.com/softwatch/astroreview/internal/review/grid"
)

const maxPriorityWeight = 5

// Priorities lists the nations under the player's control; drilling into
// one hands off to grid-selection mode over that nation's priority matrix.
type Priorities struct {
	nations []host.NationEntry
}

func NewPriorities() *Priorities {
	return &Priorities{}
}

func (p *Priorities) Name() string { return "Priorities" }

func (p *Priorities) Description() string {
	return "Priority matrices of your controlled nations. Drilling in opens grid selection."
}

func (p *Priorities) Capabilities() review.Capabilities {
	return review.Capabilities{LetterNav: true}
}

func (p *Priorities) Refresh(h host.Handle) {
	p.nations = p.nations[:0]
	for _, na := range h.Nations {
		if na.Controller == h.Faction {
			p.nations = append(p.nations, na)
		}
	}
}

func (p *Priorities) ItemCount() int { return len(p.nations) }

func (p *Priorities) ItemSummary(i int) string {
	if i < 0 || i >= len(p.nations) {
		return review.InvalidItemMessage
	}
	na := p.nations[i]
	return fmt.Sprintf("%s, %d priorities", na.Name, len(na.Priorities))
}

func (p *Priorities) ItemDetail(i int) string {
	if i < 0 || i >= len(p.nations) {
		return review.InvalidItemMessage
	}
	na := p.nations[i]
	if len(na.Priorities) == 0 {
		return na.Name + ": no priorities"
	}
	rows := append([]host.PriorityRow(nil), na.Priorities...)
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].Weight > rows[b].Weight })
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, fmt.Sprintf("%s %d", row.Name, row.Weight))
	}
	return na.Name + ": " + strings.Join(parts, ", ")
}

func (p *Priorities) ItemName(i int) string {
	if i < 0 || i >= len(p.nations) {
		return ""
	}
	return p.nations[i].Name
}

// SectionsForItem is never reached in practice: Grid takes precedence. It
// still renders a read-only view so the data survives without grid mode.
func (p *Priorities) SectionsForItem(h host.Handle, i int) ([]*review.Section, error) {
	if i < 0 || i >= len(p.nations) {
		return nil, nil
	}
	sec := review.NewSection("Weights")
	for _, row := range p.nations[i].Priorities {
		sec.AddItem(row.Name, fmt.Sprintf("%d", row.Weight), "", host.Command{})
	}
	return []*review.Section{sec}, nil
}

func (p *Priorities) CanDrillIntoItem(h host.Handle, i int) bool {
	return i >= 0 && i < len(p.nations)
}

func (p *Priorities) ActivationAnnouncement(h host.Handle) string {
	p.Refresh(h)
	return countAnnouncement("Priorities", len(p.nations))
}

// Grid hands the drilled nation's matrix to grid-selection mode.
func (p *Priorities) Grid(h host.Handle, i int) (*grid.Model, bool) {
	if i < 0 || i >= len(p.nations) {
		return nil, false
	}
	na := p.nations[i]
	return grid.New(na.Name, na.Priorities, maxPriorityWeight), true
}
