package entities

import (
	"strconv"
	"strings"
)

const taxRate = 0.08

// QuotationLine is the structured form of one quotation text, used when
// assembling the export document. Parsing is best-effort: lines that fail to
// parse keep their zero value and the derived amounts are back-filled below.
type QuotationLine struct {
	Description string  `json:"service_description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

var amountMarkers = []string{"Quantity:", "Unit Price (RM):", "Subtotal:", "Tax (8%):", "Total:"}

// ParseQuotationText extracts the line item fields from a quotation body.
// The service description may span multiple lines; it ends at the first
// amount marker. Missing amounts are reconstructed from the ones present
// (subtotal from quantity and unit price, 8% tax, total from both).
func ParseQuotationText(text string) QuotationLine {
	line := QuotationLine{Quantity: 1}

	var descLines []string
	descStarted := false

	for _, raw := range strings.Split(text, "\n") {
		l := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(l, "Service Description:"):
			descStarted = true
			descLines = append(descLines, strings.TrimSpace(strings.TrimPrefix(l, "Service Description:")))
		case descStarted && !hasAnyMarker(l):
			descLines = append(descLines, l)
		case strings.HasPrefix(l, "Quantity:"):
			descStarted = false
			if v, err := strconv.Atoi(valueAfter(l, "Quantity:")); err == nil {
				line.Quantity = v
			}
		case strings.HasPrefix(l, "Unit Price (RM):"):
			descStarted = false
			if v, err := strconv.ParseFloat(valueAfter(l, "Unit Price (RM):"), 64); err == nil {
				line.UnitPrice = v
			}
		case strings.HasPrefix(l, "Subtotal:"):
			descStarted = false
			if v, err := strconv.ParseFloat(valueAfter(l, "Subtotal:"), 64); err == nil {
				line.Subtotal = v
			}
		case strings.HasPrefix(l, "Tax (8%):"):
			descStarted = false
			if v, err := strconv.ParseFloat(valueAfter(l, "Tax (8%):"), 64); err == nil {
				line.Tax = v
			}
		case strings.HasPrefix(l, "Total:"):
			descStarted = false
			if v, err := strconv.ParseFloat(valueAfter(l, "Total:"), 64); err == nil {
				line.Total = v
			}
		}
	}

	line.Description = strings.TrimSpace(strings.Join(descLines, " "))

	if line.Subtotal == 0 && line.UnitPrice > 0 && line.Quantity > 0 {
		line.Subtotal = line.UnitPrice * float64(line.Quantity)
	}
	if line.Tax == 0 && line.Subtotal > 0 {
		line.Tax = line.Subtotal * taxRate
	}
	if line.Total == 0 && line.Subtotal > 0 && line.Tax > 0 {
		line.Total = line.Subtotal + line.Tax
	}

	return line
}

func hasAnyMarker(line string) bool {
	for _, m := range amountMarkers {
		if strings.HasPrefix(line, m) {
			return true
		}
	}
	return false
}

func valueAfter(line, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, marker))
}
