package core

import "sort"

// SortByModTime returns the candidates ordered by ascending modification time, oldest first.
//
// Candidates sharing the same modification time are ordered by name. The input is left untouched.
func SortByModTime(candidates []Candidate) []Candidate {
	sorted := make([]Candidate, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].ModTime.Equal(sorted[j].ModTime) {
			return sorted[i].ModTime.Before(sorted[j].ModTime)
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
