package screens

import (
	"fmt"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/review"
)

// Ledger lists the faction's resource lines. Each line's Sources section
// references the habs producing that resource; drilling a source opens the
// hab's own sections without leaving the ledger.
type Ledger struct {
	funds     float64
	resources []host.ResourceLine
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Name() string { return "Ledger" }

func (l *Ledger) Description() string {
	return "Faction resources with stock, income and producing habs."
}

func (l *Ledger) Capabilities() review.Capabilities {
	return review.Capabilities{LetterNav: true}
}

func (l *Ledger) Refresh(h host.Handle) {
	l.funds = h.Funds
	l.resources = append(l.resources[:0], h.Resources...)
}

func (l *Ledger) ItemCount() int { return len(l.resources) }

func (l *Ledger) ItemSummary(i int) string {
	if i < 0 || i >= len(l.resources) {
		return review.InvalidItemMessage
	}
	r := l.resources[i]
	return fmt.Sprintf("%s, %.1f in stock, %+.1f per month", r.Name, r.Stock, r.Income)
}

func (l *Ledger) ItemDetail(i int) string {
	return l.ItemSummary(i)
}

func (l *Ledger) ItemName(i int) string {
	if i < 0 || i >= len(l.resources) {
		return ""
	}
	return l.resources[i].Name
}

func (l *Ledger) SectionsForItem(h host.Handle, i int) ([]*review.Section, error) {
	if i < 0 || i >= len(l.resources) {
		return nil, nil
	}
	r := l.resources[i]

	flows := review.NewSection("Flows").
		AddItem("Stock", fmt.Sprintf("%.1f", r.Stock), "", host.Command{}).
		AddItem("Income", fmt.Sprintf("%+.1f per month", r.Income), "", host.Command{})

	sources := review.NewSection("Sources")
	for _, hab := range h.Habs {
		amount, ok := hab.Produces[r.Name]
		if !ok || amount == 0 {
			continue
		}
		sources.AddRef(hab.Name, fmt.Sprintf("%+.1f", amount),
			fmt.Sprintf("%s on %s produces %.1f %s per month", hab.Name, hab.Body, amount, r.Name),
			hab.ID)
	}
	return []*review.Section{flows, sources}, nil
}

func (l *Ledger) CanDrillIntoItem(h host.Handle, i int) bool {
	return i >= 0 && i < len(l.resources)
}

func (l *Ledger) ActivationAnnouncement(h host.Handle) string {
	l.Refresh(h)
	return fmt.Sprintf("Ledger: %.0f money, %d resources", l.funds, len(l.resources))
}

// SectionsForRef implements review.RefResolver: the ref is a hab ID and the
// result is that hab's own sections.
func (l *Ledger) SectionsForRef(h host.Handle, ref string) ([]*review.Section, error) {
	hab, ok := h.FindHab(ref)
	if !ok {
		return nil, fmt.Errorf("hab %s no longer exists", ref)
	}

	overview := review.NewSection("Overview").
		AddItem("Body", hab.Body, "", host.Command{}).
		AddItem("Faction", hab.Faction, "", host.Command{}).
		AddItem("Tier", fmt.Sprintf("%d", hab.Tier), "", host.Command{})

	modules := review.NewSection("Modules")
	for _, m := range hab.Modules {
		modules.AddItem(m, "", "", host.Command{})
	}

	production := review.NewSection("Production")
	for _, name := range sortedKeys(hab.Produces) {
		production.AddItem(name, fmt.Sprintf("%+.1f per month", hab.Produces[name]), "", host.Command{})
	}
	return []*review.Section{overview, modules, production}, nil
}
