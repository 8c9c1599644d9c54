// Package slot implements the live-surface cursor: a walk over the
// interactive elements of whatever the host is currently showing, grouped
// by container. It is the counterpart of review mode for the parts of the
// UI that are not category data.
package slot

import (
	"fmt"
	"sort"
	"time"

	"github.com/softwatch/astroreview/internal/host"
	"github.com/softwatch/astroreview/internal/logging/events"
	"github.com/softwatch/astroreview/internal/speech"
)

// focusDebounce suppresses duplicate focus announcements when the host
// refires the same element within this window.
const focusDebounce = 200 * time.Millisecond

type group struct {
	name     string
	elements []host.SurfaceElement
}

// Cursor walks the discovered surface on two levels: containers first,
// then the elements inside the entered container. Element order is
// deterministic: reading order by (Y, X), containers ordered by their
// first element. When no element declares a container the whole surface is
// one flat group and the container level is skipped entirely.
type Cursor struct {
	surfaceID string
	groups    []group
	flat      bool

	gIdx int
	eIdx int
	// entered is true while the cursor is inside a container. Flat
	// surfaces are always entered.
	entered bool

	deb *speech.Debouncer
}

// NewCursor builds an empty cursor; call Sync before use.
func NewCursor() *Cursor {
	return &Cursor{deb: speech.NewDebouncer(focusDebounce)}
}

// SetClock replaces the debounce time source for tests.
func (c *Cursor) SetClock(now func() time.Time) {
	c.deb.SetClock(now)
}

// Sync rediscovers the surface when its ID changed. The cursor resets to
// the first container, or the first element on a flat surface; an
// unchanged ID keeps the cursor where it was even if element data was
// refreshed in place. Returns true when a rediscovery happened.
func (c *Cursor) Sync(snap host.SurfaceSnapshot) bool {
	if snap.ID == c.surfaceID {
		return false
	}
	c.surfaceID = snap.ID
	c.groups = discover(snap.Elements)
	c.flat = len(c.groups) == 1 && c.groups[0].name == ""
	c.gIdx = 0
	c.eIdx = 0
	c.entered = c.flat
	c.deb.Reset()
	events.Slot.Discover(snap.ID, len(c.groups), len(snap.Elements))
	return true
}

func discover(elements []host.SurfaceElement) []group {
	if len(elements) == 0 {
		return nil
	}
	sorted := append([]host.SurfaceElement(nil), elements...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	order := make(map[string]int)
	var groups []group
	for _, el := range sorted {
		idx, seen := order[el.Container]
		if !seen {
			idx = len(groups)
			order[el.Container] = idx
			groups = append(groups, group{name: el.Container})
		}
		groups[idx].elements = append(groups[idx].elements, el)
	}
	return groups
}

// Empty reports whether the surface has no interactive elements.
func (c *Cursor) Empty() bool {
	return len(c.groups) == 0
}

// SurfaceID returns the ID of the discovered surface.
func (c *Cursor) SurfaceID() string {
	return c.surfaceID
}

// Current returns the focused element.
func (c *Cursor) Current() (host.SurfaceElement, bool) {
	if c.Empty() {
		return host.SurfaceElement{}, false
	}
	g := c.groups[c.gIdx]
	if c.eIdx < 0 || c.eIdx >= len(g.elements) {
		return host.SurfaceElement{}, false
	}
	return g.elements[c.eIdx], true
}

// AtGroups reports whether the cursor is focused on a container rather
// than an element inside one.
func (c *Cursor) AtGroups() bool {
	return !c.entered && !c.Empty()
}

// MoveNext advances to the next container, or inside one to the next
// element, crossing into the next container when the current one is
// exhausted and wrapping at the end of the surface.
func (c *Cursor) MoveNext() string {
	if c.Empty() {
		return "No controls"
	}
	if c.AtGroups() {
		c.gIdx = (c.gIdx + 1) % len(c.groups)
		c.eIdx = 0
		return c.focus()
	}
	c.eIdx++
	if c.eIdx >= len(c.groups[c.gIdx].elements) {
		c.eIdx = 0
		c.gIdx = (c.gIdx + 1) % len(c.groups)
	}
	return c.focus()
}

// MovePrevious steps back, crossing containers and wrapping symmetrically
// to MoveNext.
func (c *Cursor) MovePrevious() string {
	if c.Empty() {
		return "No controls"
	}
	if c.AtGroups() {
		c.gIdx--
		if c.gIdx < 0 {
			c.gIdx = len(c.groups) - 1
		}
		c.eIdx = 0
		return c.focus()
	}
	c.eIdx--
	if c.eIdx < 0 {
		c.gIdx--
		if c.gIdx < 0 {
			c.gIdx = len(c.groups) - 1
		}
		c.eIdx = len(c.groups[c.gIdx].elements) - 1
	}
	return c.focus()
}

// DrillIn enters the focused container, landing on its first element.
// Flat surfaces have no container level, so there is nothing to enter.
func (c *Cursor) DrillIn() (string, bool) {
	if !c.AtGroups() {
		return "", false
	}
	c.entered = true
	c.eIdx = 0
	el, ok := c.Current()
	if !ok {
		return "No controls", true
	}
	events.Slot.Focus(el.ID)
	return c.describe(el), true
}

// BackOut returns from the elements of a container to the container list.
// At the container level, or on a flat surface, it reports false and the
// caller decides what leaving the cursor means.
func (c *Cursor) BackOut() (string, bool) {
	if c.Empty() || c.flat || !c.entered {
		return "", false
	}
	c.entered = false
	events.Slot.Group(c.groupName())
	return c.describeGroup(), true
}

// NextGroup jumps to the next container without changing the level: group
// focus moves to the next group, element focus to the first element of the
// next group.
func (c *Cursor) NextGroup() string {
	if c.Empty() {
		return "No controls"
	}
	if c.flat {
		return c.focus()
	}
	c.gIdx = (c.gIdx + 1) % len(c.groups)
	c.eIdx = 0
	return c.focus()
}

// PreviousGroup jumps to the previous container, wrapping like NextGroup.
func (c *Cursor) PreviousGroup() string {
	if c.Empty() {
		return "No controls"
	}
	if c.flat {
		return c.focus()
	}
	c.gIdx--
	if c.gIdx < 0 {
		c.gIdx = len(c.groups) - 1
	}
	c.eIdx = 0
	return c.focus()
}

// focus builds the announcement for the current focus, debounced per
// element or container. Suppressed repeats return "".
func (c *Cursor) focus() string {
	if c.AtGroups() {
		if !c.deb.Allow("group/" + c.groups[c.gIdx].name) {
			return ""
		}
		events.Slot.Group(c.groupName())
		return c.describeGroup()
	}
	el, ok := c.Current()
	if !ok {
		return "No controls"
	}
	if !c.deb.Allow(el.ID) {
		return ""
	}
	events.Slot.Focus(el.ID)
	return c.describe(el)
}

func (c *Cursor) groupName() string {
	name := c.groups[c.gIdx].name
	if name == "" {
		name = "Ungrouped"
	}
	return name
}

func (c *Cursor) describeGroup() string {
	g := c.groups[c.gIdx]
	word := "controls"
	if len(g.elements) == 1 {
		word = "control"
	}
	return fmt.Sprintf("%s, group %d of %d, %d %s",
		c.groupName(), c.gIdx+1, len(c.groups), len(g.elements), word)
}

func (c *Cursor) describe(el host.SurfaceElement) string {
	g := c.groups[c.gIdx]
	pos := fmt.Sprintf("%d of %d", c.eIdx+1, len(g.elements))
	if c.flat || g.name == "" {
		return fmt.Sprintf("%s, %s, %s", el.Label, el.Kind, pos)
	}
	return fmt.Sprintf("%s, %s, %s in %s", el.Label, el.Kind, pos, g.name)
}

// Position re-announces the current focus, bypassing the debounce.
func (c *Cursor) Position() string {
	if c.AtGroups() {
		return c.describeGroup()
	}
	el, ok := c.Current()
	if !ok {
		return "No controls"
	}
	return c.describe(el)
}

// Activate returns the focused element's command and the confirmation text.
// Elements without a command return a zero command and a refusal; container
// focus has to be entered before anything can activate.
func (c *Cursor) Activate() (host.Command, string) {
	if c.AtGroups() {
		return host.Command{}, fmt.Sprintf("Enter to open %s", c.groupName())
	}
	el, ok := c.Current()
	if !ok {
		return host.Command{}, "No controls"
	}
	if el.Command.IsZero() {
		return host.Command{}, fmt.Sprintf("%s is not activatable", el.Label)
	}
	events.Slot.Activate(el.ID, el.Command.Verb)
	return el.Command, el.Label
}
