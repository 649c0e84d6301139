package detector

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// WritePreviewPNG renders the 16-bit buffer as an 8-bit grayscale PNG for
// quick inspection, stretched so the brightest pixel maps to white. When
// maxDim is positive and smaller than the detector, the image is
// downsampled to fit within maxDim on both axes.
func (d *Detector) WritePreviewPNG(w io.Writer, maxDim int) error {
	// Stretch to the full 8-bit range
	var peak uint16
	for _, v := range d.buffer {
		if v > peak {
			peak = v
		}
	}

	img := image.NewGray(image.Rect(0, 0, d.NX, d.NY))
	if peak > 0 {
		for j := 0; j < d.NY; j++ {
			for i := 0; i < d.NX; i++ {
				v := d.buffer[j*d.NX+i]
				img.SetGray(i, j, color.Gray{Y: uint8(uint32(v) * 255 / uint32(peak))})
			}
		}
	}

	out := image.Image(img)
	if maxDim > 0 && (d.NX > maxDim || d.NY > maxDim) {
		scale := float64(maxDim) / float64(max(d.NX, d.NY))
		dst := image.NewGray(image.Rect(0, 0, int(float64(d.NX)*scale), int(float64(d.NY)*scale)))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		out = dst
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}
