package ui

import "strings"

// clampLines truncates a block to at most n lines, marking the cut
// with an ellipsis on the last kept line.
func clampLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	kept := lines[:n]
	if runes := []rune(kept[n-1]); len(runes) > 1 {
		kept[n-1] = string(runes[:len(runes)-1])
	}
	kept[n-1] += "…"
	return strings.Join(kept, "\n")
}

// truncateText shortens a single line to max runes with an ellipsis.
func truncateText(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
