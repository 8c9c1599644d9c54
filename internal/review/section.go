package review

import (
	"fmt"
	"strings"

	"github.com/softwatch/astroreview/internal/host"
)

// SectionItem is a leaf entry under a drilled-into item: a summary line,
// an optional value and detail text, at most one command, and an optional
// reference enabling a further drill into the referenced object's own
// sections (a ledger line opening the hab that produced it).
type SectionItem struct {
	Summary string
	Value   string
	Detail  string
	Command host.Command
	Ref     string
}

// Activatable reports whether the entry carries a command.
func (it SectionItem) Activatable() bool {
	return !it.Command.IsZero()
}

// HasRef reports whether the entry drills into nested sections.
func (it SectionItem) HasRef() bool {
	return it.Ref != ""
}

// Line is the spoken form: summary plus value when present.
func (it SectionItem) Line() string {
	if it.Value == "" {
		return it.Summary
	}
	return fmt.Sprintf("%s: %s", it.Summary, it.Value)
}

// Section is a named, insertion-ordered group of entries under one item.
// A section with zero entries is valid and announces as empty.
type Section struct {
	Name  string
	Items []SectionItem
}

// NewSection starts an empty section.
func NewSection(name string) *Section {
	return &Section{Name: name}
}

// AddItem appends a plain or activatable entry.
func (s *Section) AddItem(summary, value, detail string, cmd host.Command) *Section {
	s.Items = append(s.Items, SectionItem{Summary: summary, Value: value, Detail: detail, Command: cmd})
	return s
}

// AddRef appends an entry that drills into the sections behind ref.
func (s *Section) AddRef(summary, value, detail, ref string) *Section {
	s.Items = append(s.Items, SectionItem{Summary: summary, Value: value, Detail: detail, Ref: ref})
	return s
}

// Announce describes the section for speech: name plus entry count.
func (s *Section) Announce() string {
	switch len(s.Items) {
	case 0:
		return fmt.Sprintf("%s, no entries", s.Name)
	case 1:
		return fmt.Sprintf("%s, 1 entry", s.Name)
	default:
		return fmt.Sprintf("%s, %d entries", s.Name, len(s.Items))
	}
}

// JoinLines renders every entry line for list-all reads.
func (s *Section) JoinLines() string {
	if len(s.Items) == 0 {
		return s.Name + ": no entries"
	}
	lines := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		lines = append(lines, it.Line())
	}
	return s.Name + ": " + strings.Join(lines, "; ")
}
