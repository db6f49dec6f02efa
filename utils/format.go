package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders a listing price as a whole-dollar amount with comma
// grouping, e.g. 1234567.89 -> "$1,234,568".
func FormatPrice(price float64) string {
	rounded := int64(math.Round(price))
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := strconv.FormatInt(rounded, 10)
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	if negative {
		return fmt.Sprintf("-$%s", grouped)
	}
	return fmt.Sprintf("$%s", grouped)
}
