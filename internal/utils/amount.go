package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// SetLocale switches the number grouping used by FormatAmount.
func SetLocale(tag string) error {
	if strings.TrimSpace(tag) == "" {
		return nil
	}

	t, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	printer = message.NewPrinter(t)
	return nil
}

// FormatAmount renders a whole amount with the locale's digit grouping.
func FormatAmount(amount int64) string {
	return printer.Sprintf("%d", amount)
}

// FormatMoney prefixes the currency symbol, keeping the sign in front.
func FormatMoney(symbol string, amount int64) string {
	if amount < 0 {
		return "-" + symbol + FormatAmount(-amount)
	}
	return symbol + FormatAmount(amount)
}

// FormatSigned renders a ledger delta with an explicit sign.
func FormatSigned(symbol string, delta int64) string {
	if delta >= 0 {
		return "+" + FormatMoney(symbol, delta)
	}
	return FormatMoney(symbol, delta)
}

// ParseAmount parses a whole amount such as "1500", "1,500" or "1.500.000".
// Separators are only accepted between groups of three digits, so "150.50"
// is rejected rather than silently read as 15050.
func ParseAmount(amountStr string) (int64, error) {
	s := strings.TrimSpace(amountStr)
	s = strings.NewReplacer(" ", "", "_", "", "$", "").Replace(s)

	if s == "" {
		return 0, fmt.Errorf("amount is required")
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	parts := strings.Split(strings.ReplaceAll(s, ",", "."), ".")
	for i, p := range parts {
		if p == "" {
			return 0, fmt.Errorf("invalid amount: %s", amountStr)
		}
		if i > 0 && len(p) != 3 {
			return 0, fmt.Errorf("invalid amount %s: amounts are whole numbers", amountStr)
		}
	}

	n, err := strconv.ParseInt(sign+strings.Join(parts, ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}
	return n, nil
}
