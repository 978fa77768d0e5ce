// Package photos reads, probes and scales photo files on disk.
package photos

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	// webp decoding is not covered by imaging's own format list
	_ "golang.org/x/image/webp"
)

// Open decodes an image file with its EXIF orientation applied, so the
// reported bounds match what a viewer shows.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}
