package entities

import "strings"

// Fingerprint markers match the line labels of the backend's quotation
// template. The backend may wrap the same line item in different explanatory
// prose across turns ("match score", alternative suggestions); only these four
// fields identify the line item.
var fingerprintMarkers = []string{
	"Service Description:",
	"Quantity:",
	"Unit Price (RM):",
	"Total:",
}

// Fingerprint derives the identity key of a quotation text used for
// deduplication and replacement matching. Fields that are absent contribute
// nothing; a text with none of the markers yields the empty string, making all
// such quotations mutually duplicate. That is a known limitation of the
// marker-based scheme, kept on purpose.
func Fingerprint(text string) string {
	var b strings.Builder
	for _, marker := range fingerprintMarkers {
		if v, ok := markerValue(text, marker); ok {
			b.WriteString("|")
			b.WriteString(v)
		}
	}
	return b.String()
}

// markerValue returns the trimmed remainder of the first line starting with
// marker. Prefix matching keeps "Total:" from capturing the "Subtotal:" line.
func markerValue(text, marker string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}
