package player

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as MM:SS. Minutes are zero-padded to two
// digits and not wrapped at the hour.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
