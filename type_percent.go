package portfolio

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percent: 9.8 means 9.8%.
type Percent float64

// percentTolerance is far below the two decimals rates are displayed with.
const percentTolerance = 1e-4

// Equal reports whether p and q agree within percentTolerance.
func (p Percent) Equal(q Percent) bool { return math.Abs(float64(p-q)) < percentTolerance }

func (p Percent) String() string { return fmt.Sprintf("%.2f%%", float64(p)) }

// SignedString is String with an explicit sign. Rates that display as zero
// read "-".
func (p Percent) SignedString() string {
	if math.Abs(float64(p)) < 0.005 {
		return "-"
	}
	return fmt.Sprintf("%+.2f%%", float64(p))
}
