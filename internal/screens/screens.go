// Package screens holds the concrete review categories. The set is closed:
// All returns every screen in its fixed presentation order, and nothing
// discovers screens at runtime.
package screens

import (
	"fmt"
	"sort"

	"github.com/softwatch/astroreview/internal/review"
)

// All returns the screen set in presentation order.
func All() []review.Screen {
	return []review.Screen{
		NewFleets(),
		NewCouncilors(),
		NewNations(),
		NewResearch(),
		NewLedger(),
		NewPriorities(),
	}
}

// lineAt is the tolerant read shared by every screen: stale indices speak
// as invalid instead of panicking mid-navigation.
func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return review.InvalidItemMessage
	}
	return lines[i]
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func countAnnouncement(name string, n int) string {
	switch n {
	case 0:
		return fmt.Sprintf("%s: empty", name)
	case 1:
		return fmt.Sprintf("%s: 1 item", name)
	default:
		return fmt.Sprintf("%s: %d items", name, n)
	}
}
