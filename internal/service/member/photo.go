package member

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// thumbWidth is the roster grid display width.
const thumbWidth = 320

const thumbJPEGQuality = 82

// makeThumbnail decodes a headshot and renders a JPEG thumbnail capped
// at thumbWidth, preserving aspect ratio. Photos already narrower than
// the cap are re-encoded as-is.
func makeThumbnail(photo []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(photo))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPhoto, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > thumbWidth {
		newHeight := int(float64(height) * float64(thumbWidth) / float64(width))
		dst := image.NewRGBA(image.Rect(0, 0, thumbWidth, newHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: thumbJPEGQuality}); err != nil {
		return nil, fmt.Errorf("encoding thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
