package playerbar

import (
	"fmt"
	"math"
)

// RenderVolume renders the volume as a whole percentage, e.g. "Volume: 50%".
func RenderVolume(volume float64) string {
	pct := int(math.Round(max(0, min(1, volume)) * 100))
	return fmt.Sprintf("Volume: %d%%", pct)
}
