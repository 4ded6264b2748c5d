package ledger

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var errInvalidMoney = errors.New("invalid money value")

// parseMoney converts a decimal rupee string to paise. Both dot and
// comma decimal separators are accepted; the third decimal digit rounds
// half-up. Signed values are rejected, zero is allowed (the amount check
// in BuildExpense owns positivity).
func parseMoney(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errInvalidMoney
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, errInvalidMoney
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, errInvalidMoney
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, errInvalidMoney
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, errInvalidMoney
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, errInvalidMoney
	}
	const maxSafeRupees = (1<<63 - 1) / 100
	if iv > maxSafeRupees {
		return 0, errInvalidMoney
	}

	var fracPaise int64
	if len(fracPart) > 0 {
		fracPaise = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracPaise += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracPaise++
			}
		}
	}

	return iv*100 + fracPaise, nil
}
