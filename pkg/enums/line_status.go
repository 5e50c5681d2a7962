package enums

import "fmt"

// LineStatus describes the allowed values for the `ordered_product_status`
// column in ordered_products.
type LineStatus string

const (
	LineStatusPlaced    LineStatus = "Placed"
	LineStatusFulfilled LineStatus = "Fulfilled"
	LineStatusCancelled LineStatus = "Cancelled"
)

var validLineStatuses = []LineStatus{
	LineStatusPlaced,
	LineStatusFulfilled,
	LineStatusCancelled,
}

// IsValid reports whether the value matches the canonical line status enum.
func (s LineStatus) IsValid() bool {
	for _, candidate := range validLineStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseLineStatus converts the raw string to LineStatus.
func ParseLineStatus(value string) (LineStatus, error) {
	for _, candidate := range validLineStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid line status %q", value)
}
