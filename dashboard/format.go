package dashboard

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// money formats a dollar amount with thousands grouping and two decimals,
// e.g. 2000 -> "$2,000.00".
func money(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// percent formats a percentage with two decimals and a trailing sign.
func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// quantity formats a share count with two decimals.
func quantity(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// ratio formats the risk-adjusted ratio.
func ratio(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
