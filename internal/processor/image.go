package processor

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/parkatlas/park-media-go/internal/port"
)

const (
	// MaxImageDimension bounds both sides of a normalised image. Larger
	// inputs are scaled down to fit, smaller ones are never upscaled.
	MaxImageDimension = 1920

	// ThumbnailSize is the side of the square thumbnail, shared by the
	// photo and video paths.
	ThumbnailSize = 320

	jpegQuality      = 82
	thumbJpegQuality = 75
)

// ImageNormalizer decodes, auto-rotates, resizes and re-encodes still
// images. HEIC inputs are decoded through the encoder subprocess since no
// native decoder is available.
type ImageNormalizer struct {
	invoker port.Invoker
}

func NewImageNormalizer(invoker port.Invoker) *ImageNormalizer {
	return &ImageNormalizer{invoker: invoker}
}

// NormalizedImage is the output of one Normalize call. Width and Height are
// measured after resize and rotation, not the original dimensions.
type NormalizedImage struct {
	Data     []byte
	Width    int
	Height   int
	MimeType string
}

func (n *ImageNormalizer) Normalize(ctx context.Context, data []byte, contentType string) (*NormalizedImage, error) {
	img, err := n.decode(ctx, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}

	b := img.Bounds()
	if b.Dx() > MaxImageDimension || b.Dy() > MaxImageDimension {
		img = imaging.Fit(img, MaxImageDimension, MaxImageDimension, imaging.Lanczos)
	}

	outMime := outputMimeType(contentType)
	out, err := encodeImage(img, outMime, jpegQuality)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}

	bounds := img.Bounds()
	return &NormalizedImage{Data: out, Width: bounds.Dx(), Height: bounds.Dy(), MimeType: outMime}, nil
}

// Thumbnail produces a square centre crop of the normalised image at
// ThumbnailSize, always in JPEG so the display layer never needs
// per-thumbnail format branching.
func (n *ImageNormalizer) Thumbnail(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}

	thumb := imaging.Fill(img, ThumbnailSize, ThumbnailSize, imaging.Center, imaging.Lanczos)

	buf := &bytes.Buffer{}
	if err := imaging.Encode(buf, thumb, imaging.JPEG, imaging.JPEGQuality(thumbJpegQuality)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageProcessing, err)
	}
	return buf.Bytes(), nil
}

func (n *ImageNormalizer) decode(ctx context.Context, data []byte, contentType string) (image.Image, error) {
	if contentType == "image/heic" {
		return n.decodeViaEncoder(ctx, data)
	}
	// orientation metadata is applied during decode so rotated photos come
	// out upright regardless of source camera orientation
	return imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
}

// decodeViaEncoder feeds the image through the encoder subprocess and reads
// back a single PNG frame on stdout.
func (n *ImageNormalizer) decodeViaEncoder(ctx context.Context, data []byte) (image.Image, error) {
	inPath, err := writeTempFile(data, ".heic")
	if err != nil {
		return nil, err
	}
	defer removeTemp(inPath)

	res, err := n.invoker.RunEncoder(ctx,
		"-i", inPath,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	)
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("encoder exited with code %d: %s", res.ExitCode, bytes.TrimSpace(res.Stderr))
	}

	img, _, err := image.Decode(bytes.NewReader(res.Stdout))
	return img, err
}

// outputMimeType selects the target encoding: PNG and WebP are re-encoded in
// their own codec, everything else (JPEG, GIF, TIFF and the legacy HEIC)
// ends up as baseline JPEG.
func outputMimeType(contentType string) string {
	switch contentType {
	case "image/png", "image/webp":
		return contentType
	default:
		return "image/jpeg"
	}
}

func encodeImage(img image.Image, mimeType string, quality int) ([]byte, error) {
	buf := &bytes.Buffer{}
	switch mimeType {
	case "image/png":
		if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
			return nil, err
		}
	case "image/webp":
		if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
			return nil, err
		}
	default:
		if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
