package screens

import (
	"fmt"
	"sort"

	"github.com/softwatch/astroreview/internal/format/table"
	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review"
)

// Nations lists every nation row, filterable by controlling faction.
type Nations struct {
	filter      string
	controllers []string
	nations     []host.NationEntry
	lines       []string
}

func NewNations() *Nations {
	return &Nations{}
}

func (n *Nations) Name() string { return "Nations" }

func (n *Nations) Description() string {
	return "Nations of Earth with control, unrest and economy figures."
}

func (n *Nations) Capabilities() review.Capabilities {
	return review.Capabilities{LetterNav: true, FactionFilter: true}
}

func (n *Nations) Refresh(h host.Handle) {
	seen := map[string]bool{}
	n.controllers = n.controllers[:0]
	n.nations = n.nations[:0]
	for _, na := range h.Nations {
		if na.Controller != "" && !seen[na.Controller] {
			seen[na.Controller] = true
			n.controllers = append(n.controllers, na.Controller)
		}
		if n.filter != "" && na.Controller != n.filter {
			continue
		}
		n.nations = append(n.nations, na)
	}
	sort.Strings(n.controllers)
	if n.filter != "" && !seen[n.filter] {
		n.filter = ""
		n.nations = append(n.nations[:0], h.Nations...)
	}
	rows := make([][]string, 0, len(n.nations))
	for _, na := range n.nations {
		rows = append(rows, []string{
			na.Name,
			fmt.Sprintf("%d CP", na.ControlPoints),
			fmt.Sprintf("unrest %.1f", na.Unrest),
		})
	}
	n.lines = table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft})
}

func (n *Nations) ItemCount() int { return len(n.nations) }

func (n *Nations) ItemSummary(i int) string { return lineAt(n.lines, i) }

func (n *Nations) ItemDetail(i int) string {
	if i < 0 || i >= len(n.nations) {
		return review.InvalidItemMessage
	}
	na := n.nations[i]
	controller := na.Controller
	if controller == "" {
		controller = "uncontrolled"
	}
	return fmt.Sprintf("%s, %s, %d control points, unrest %.1f, GDP %.0f billion, %d armies",
		na.Name, controller, na.ControlPoints, na.Unrest, na.GDP, na.Armies)
}

func (n *Nations) ItemName(i int) string {
	if i < 0 || i >= len(n.nations) {
		return ""
	}
	return n.nations[i].Name
}

func (n *Nations) SectionsForItem(h host.Handle, i int) ([]*review.Section, error) {
	if i < 0 || i >= len(n.nations) {
		return nil, nil
	}
	na := n.nations[i]

	overview := review.NewSection("Overview").
		AddItem("Controller", orUnclaimed(na.Controller), "", host.Command{}).
		AddItem("Control points", fmt.Sprintf("%d", na.ControlPoints), "", host.Command{}).
		AddItem("Unrest", fmt.Sprintf("%.1f", na.Unrest), "", host.Command{}).
		AddItem("GDP", fmt.Sprintf("%.0f billion", na.GDP), "", host.Command{}).
		AddItem("Armies", fmt.Sprintf("%d", na.Armies), "", host.Command{})

	// Read-only here; weight editing lives on the Priorities screen.
	priorities := review.NewSection("Priorities")
	for _, row := range na.Priorities {
		priorities.AddItem(row.Name, fmt.Sprintf("weight %d", row.Weight), "", host.Command{})
	}
	return []*review.Section{overview, priorities}, nil
}

func (n *Nations) CanDrillIntoItem(h host.Handle, i int) bool {
	return i >= 0 && i < len(n.nations)
}

func (n *Nations) ActivationAnnouncement(h host.Handle) string {
	n.Refresh(h)
	name := "Nations"
	if n.filter != "" {
		name = "Nations, " + n.filter
	}
	return countAnnouncement(name, len(n.nations))
}

// CycleFactionFilter implements review.FactionCycler over controllers.
func (n *Nations) CycleFactionFilter(h host.Handle) string {
	n.filter = nextFaction(n.controllers, n.filter)
	n.Refresh(h)
	if n.filter == "" {
		return fmt.Sprintf("All nations, %d", len(n.nations))
	}
	return fmt.Sprintf("%s nations, %d", n.filter, len(n.nations))
}

func orUnclaimed(controller string) string {
	if controller == "" {
		return "uncontrolled"
	}
	return controller
}
