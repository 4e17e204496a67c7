package imageprocessor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultQuality  = 85
	DefaultMaxWidth = 1920
)

// ErrUnsupportedFormat is returned for formats that decode but cannot be
// re-encoded without loss of features (webp, animated gif).
var ErrUnsupportedFormat = errors.New("unsupported image format for optimization")

// Processor bounds image width and re-encodes at a fixed quality.
type Processor struct {
	quality  int // JPEG quality (1-100)
	maxWidth int
}

func NewProcessor(quality, maxWidth int) *Processor {
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &Processor{
		quality:  quality,
		maxWidth: maxWidth,
	}
}

// Optimize returns a re-encoded copy of data. changed is false when the
// result would be neither narrower nor smaller than the input, in which case
// the input is returned as is.
func (p *Processor) Optimize(data []byte) (out []byte, changed bool, err error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %w", err)
	}

	resized := false
	if img.Bounds().Dx() > p.maxWidth {
		img = p.resize(img, p.maxWidth)
		resized = true
	}

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: p.quality}); err != nil {
			return nil, false, fmt.Errorf("failed to encode JPEG: %w", err)
		}
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, false, fmt.Errorf("failed to encode PNG: %w", err)
		}
	default:
		return nil, false, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if !resized && buf.Len() >= len(data) {
		return data, false, nil
	}
	return buf.Bytes(), true, nil
}

// resize scales img down to width, keeping the aspect ratio.
func (p *Processor) resize(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	height := int(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx()))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// Dimensions reads only the image header.
func Dimensions(data []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
