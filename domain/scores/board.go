package scores

import (
	"cmp"
	"slices"

	"github.com/montanaflynn/stats"
)

// ColorFor returns the palette color for a position
func ColorFor(index int) Color {
	return Palette[index%len(Palette)]
}

// FromRows maps decoded rows to entries, coloring by position
func FromRows(rows []Row) []Entry {
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = Entry{
			Name:  row.Name,
			Score: row.Score,
			Color: ColorFor(i),
		}
	}
	return entries
}

// Sort returns a new slice ordered by score in the given direction.
// The input slice is never modified.
func Sort(entries []Entry, dir Direction) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		if dir == Ascending {
			return cmp.Compare(a.Score, b.Score)
		}
		return cmp.Compare(b.Score, a.Score)
	})
	return sorted
}

// Toggle flips the direction and reorders the list by the new direction
func Toggle(entries []Entry, dir Direction) ([]Entry, Direction) {
	next := dir.Flip()
	return Sort(entries, next), next
}

// Summary describes the displayed scores
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes a Summary; ok is false for an empty list
func Summarize(entries []Entry) (Summary, bool) {
	if len(entries) == 0 {
		return Summary{}, false
	}

	data := make(stats.Float64Data, len(entries))
	for i, e := range entries {
		data[i] = e.Score
	}

	// stats only errors on empty input, which is excluded above
	mean, _ := data.Mean()
	median, _ := data.Median()
	minScore, _ := data.Min()
	maxScore, _ := data.Max()

	return Summary{
		Count:  len(entries),
		Mean:   mean,
		Median: median,
		Min:    minScore,
		Max:    maxScore,
	}, true
}
