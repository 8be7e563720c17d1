package cli

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// SuggestionThreshold is the minimum Jaro-Winkler similarity for a "did you mean" hint
const SuggestionThreshold = 0.8

// sheetWarning describes a requested sheet that the workbook does not have
type sheetWarning struct {
	Requested  string
	Suggestion string // closest existing sheet, empty if nothing is close
}

// unknownSheets returns a warning for every requested name missing from available
func unknownSheets(requested, available []string) []sheetWarning {
	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}

	var warnings []sheetWarning
	for _, name := range requested {
		if known[name] {
			continue
		}
		warnings = append(warnings, sheetWarning{
			Requested:  name,
			Suggestion: closestSheet(name, available),
		})
	}
	return warnings
}

func closestSheet(name string, available []string) string {
	var (
		best      string
		bestScore float32
	)
	needle := strings.ToLower(name)
	for _, candidate := range available {
		score := edlib.JaroWinklerSimilarity(needle, strings.ToLower(candidate))
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < SuggestionThreshold {
		return ""
	}
	return best
}
