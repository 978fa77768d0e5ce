package layout

import (
	"fmt"
	"math"
	"strings"
)

// FallbackLayout generates the generic grid for a photo count, used when the
// curated catalog is exhausted or has no entry for the count. Pure and
// deterministic: columns = ceil(sqrt(count)), rows = ceil(count/columns).
//
// The area string is built row by row. When a row has more cells than
// remaining photos, the last photo's area name repeats to fill the row, so
// the final photo stretches across the leftover cells instead of leaving
// blank grid space. That stretch is deliberate policy, not an artifact.
// Example for count=5: cols=3, rows=2, areas "img0 img1 img2" "img3 img4 img4".
func FallbackLayout(count int) GridStyle {
	if count < 1 {
		count = 1
	}

	cols := int(math.Ceil(math.Sqrt(float64(count))))
	rows := int(math.Ceil(float64(count) / float64(cols)))

	var b strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('"')
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			if idx >= count {
				idx = count - 1
			}
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(AreaName(idx))
		}
		b.WriteByte('"')
	}

	return GridStyle{
		Name:    fmt.Sprintf("fallback-%d", count),
		Columns: fmt.Sprintf("repeat(%d, 1fr)", cols),
		Rows:    fmt.Sprintf("repeat(%d, 1fr)", rows),
		Areas:   b.String(),
	}
}
