package util

import "strings"

// MaskName hides all but the first letter of each word in a display name,
// e.g. "Yusuf Karaca" -> "Y**** K*****". Single-letter words pass through.
// The database-side mask_name function applies the same rule; this helper
// backs non-PostgreSQL deployments and display fallbacks.
func MaskName(fullName string) string {
	if fullName == "" {
		return ""
	}

	words := strings.Fields(fullName)
	masked := make([]string, 0, len(words))
	for _, word := range words {
		runes := []rune(word)
		if len(runes) > 1 {
			masked = append(masked, string(runes[0])+strings.Repeat("*", len(runes)-1))
		} else {
			masked = append(masked, word)
		}
	}
	return strings.Join(masked, " ")
}
