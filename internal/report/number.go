package report

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultDecimals is the precision used for non-integral values.
const DefaultDecimals = 2

const integralTolerance = 1e-9

// Printer formats numbers and result lines.
type Printer struct {
	decimals int
	msg      *message.Printer
}

// NewPrinter creates a Printer using decimals for non-integral values.
// Negative decimals fall back to DefaultDecimals.
func NewPrinter(decimals int) *Printer {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	return &Printer{
		decimals: decimals,
		msg:      message.NewPrinter(language.English),
	}
}

// Number formats value with thousands separators.
func (p *Printer) Number(value float64) string {
	rounded := math.Round(value)
	if math.Abs(value-rounded) < integralTolerance {
		if rounded == 0 {
			// Avoid printing negative zero.
			rounded = 0
		}
		return p.msg.Sprintf("%.0f", rounded)
	}
	return p.msg.Sprintf(fmt.Sprintf("%%.%df", p.decimals), value)
}
