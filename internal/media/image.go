package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
)

const (
	ContentTypeWebP = "image/webp"
	webpQuality     = 80
	maxUploadBytes  = 10 << 20
	// 40 megapixels decodes to 160 MB of RGBA.
	maxPixels = 40_000_000
)

var (
	errUnsupportedImage = apperr.Invalid("image", "must be a JPEG, PNG or WebP image")
	errImageTooLarge    = apperr.Invalid("image", "must be at most 10 MB and 40 megapixels")
)

// ToWebP decodes a JPEG, PNG or WebP image, shrinks it so neither side
// exceeds maxSide and re-encodes it as lossy WebP. Dimensions are read
// from the header first so oversized images are refused before decoding.
func ToWebP(r io.Reader, maxSide int) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxUploadBytes+1))
	if err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInvalid, "read image failed").WithField("image", "unreadable upload")
	}
	if len(raw) > maxUploadBytes {
		return nil, errImageTooLarge
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, errUnsupportedImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errUnsupportedImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return nil, errImageTooLarge
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errUnsupportedImage
	}

	img := fit(src, maxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, apperr.Wrap(err, apperr.CodeInternal, "encode webp failed")
	}
	return buf.Bytes(), nil
}

// fit scales src down, keeping its aspect ratio. Images already within
// bounds are returned as is.
func fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	nw, nh := maxSide, maxSide
	if w >= h {
		nh = max(1, h*maxSide/w)
	} else {
		nw = max(1, w*maxSide/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
