package stats

import "fmt"

// Challenge describes a practice mode known to the dashboards.
type Challenge struct {
	Type string
	Name string
}

// Catalog lists the built-in challenge types in display order.
var Catalog = []Challenge{
	{Type: "arithmetic", Name: "Arithmetic"},
	{Type: "mental-math", Name: "Mental Math"},
	{Type: "speed-drill", Name: "Speed Drill"},
	{Type: "number-sequences", Name: "Sequences"},
	{Type: "estimation", Name: "Estimation"},
	{Type: "mixed-challenge", Name: "Mixed"},
}

// DisplayName returns the catalog name for challengeType, or the tag
// itself for types outside the catalog.
func DisplayName(challengeType string) string {
	for _, c := range Catalog {
		if c.Type == challengeType {
			return c.Name
		}
	}
	return challengeType
}

// FormatSeconds renders a duration as "45s" or "2m 5s".
func FormatSeconds(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
