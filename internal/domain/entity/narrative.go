package entity

import "unicode/utf8"

const (
	// NarrativeLimit is the post length cap of the target platform, in characters.
	NarrativeLimit = 280
	// NarrativeEllipsis marks truncated text.
	NarrativeEllipsis = "..."

	narrativeKeep = NarrativeLimit - len(NarrativeEllipsis)
)

// NarrativeText is the caption derived from one WeatherRecord. Length is counted in runes.
type NarrativeText string

// Len returns the number of characters.
func (n NarrativeText) Len() int {
	return utf8.RuneCountInString(string(n))
}

// Valid reports whether the text fits NarrativeLimit.
func (n NarrativeText) Valid() bool {
	return n.Len() <= NarrativeLimit
}

func (n NarrativeText) String() string {
	return string(n)
}

// TruncateNarrative caps text at NarrativeLimit characters: longer text keeps its first 277
// characters followed by NarrativeEllipsis. Applying it to its own output is a no-op.
func TruncateNarrative(text string) NarrativeText {
	if utf8.RuneCountInString(text) <= NarrativeLimit {
		return NarrativeText(text)
	}

	runes := []rune(text)
	return NarrativeText(string(runes[:narrativeKeep]) + NarrativeEllipsis)
}
