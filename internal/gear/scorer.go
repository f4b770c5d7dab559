// Package gear manages per-member equipment checklists and the gear
// readiness score.
package gear

import (
	"math"

	"github.com/rokufv/itadaki/internal/fuji"
)

// Score converts a checklist into a 0-100 gear score. Categories contribute
// proportionally to their weight; a missing critical item caps the result
// at 40 no matter how complete the rest of the checklist is.
func Score(checked map[string]bool) int {
	var total float64
	for _, cat := range fuji.GearCategories {
		if len(cat.Items) == 0 {
			continue
		}
		n := 0
		for _, item := range cat.Items {
			if checked[item.ID] {
				n++
			}
		}
		total += float64(n) / float64(len(cat.Items)) * cat.Weight * 100
	}

	score := int(math.Round(total))
	if HasCriticalMissing(checked) && score > 40 {
		score = 40
	}
	return score
}

// HasCriticalMissing reports whether any of the critical essential items
// (boots, rain wear, headlamp) is unchecked. An absent key counts as
// unchecked.
func HasCriticalMissing(checked map[string]bool) bool {
	for _, id := range fuji.CriticalGearIDs {
		if !checked[id] {
			return true
		}
	}
	return false
}
