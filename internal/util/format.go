package util

import (
	"fmt"
	"strings"
)

const (
	paisePerRupee = 100
	thousandValue = 1000
)

// FormatMoney renders an amount of paise as rupees with comma grouping.
// Whole-rupee amounts drop the fractional part: 317000 -> "3,170",
// 123456 -> "1,234.56".
func FormatMoney(value int64) string {
	var isNegative bool
	if value < 0 {
		value *= -1
		isNegative = true
	}

	rupees := value / paisePerRupee
	paise := value % paisePerRupee

	var groups []string
	for rupees >= thousandValue {
		groups = append([]string{fmt.Sprintf("%03d", rupees%thousandValue)}, groups...)
		rupees /= thousandValue
	}
	groups = append([]string{fmt.Sprintf("%d", rupees)}, groups...)

	result := strings.Join(groups, ",")
	if paise != 0 {
		result = fmt.Sprintf("%s.%02d", result, paise)
	}

	if isNegative {
		return "-" + result
	}

	return result
}
