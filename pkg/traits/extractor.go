package traits

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"time"

	gocache "github.com/patrickmn/go-cache"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage marks image bytes that no registered decoder accepts.
var ErrInvalidImage = errors.New("invalid image file")

// Extractor maps raw image bytes to a Traits record. It is a placeholder
// heuristic, not real computer vision: the pipeline only relies on its
// signature and on it being deterministic (same bytes, same traits).
type Extractor interface {
	Extract(data []byte) (Traits, error)
}

// brightnessExtractor guesses skin depth from the mean brightness of a
// center crop and fixes every other trait to a neutral default.
type brightnessExtractor struct {
	memo *gocache.Cache
}

func NewExtractor() Extractor {
	return &brightnessExtractor{
		memo: gocache.New(30*time.Minute, 10*time.Minute),
	}
}

func (e *brightnessExtractor) Extract(data []byte) (Traits, error) {
	// Extraction is deterministic per image, so memoizing on the content
	// hash cannot change any response.
	key := hashKey(data)
	if cached, ok := e.memo.Get(key); ok {
		return cached.(Traits), nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Traits{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	t := Traits{
		SkinTemperature: SkinTemperatureNeutral, // fixed for now
		SkinDepth:       depthFromBrightness(centerBrightness(img)),
		HairType:        "unknown",
		HairColor:       "unknown",
		Frame:           FrameRegular,
		HeightBucket:    HeightAvg,
		Shoulders:       ShouldersAverage,
	}

	e.memo.Set(key, t, gocache.DefaultExpiration)
	return t, nil
}

// centerBrightness returns the mean grayscale value (0-255) over the central
// 30%-70% crop of the image.
func centerBrightness(img image.Image) float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	x1 := b.Min.X + int(float64(w)*0.3)
	y1 := b.Min.Y + int(float64(h)*0.3)
	x2 := b.Min.X + int(float64(w)*0.7)
	y2 := b.Min.Y + int(float64(h)*0.7)
	if x2 <= x1 || y2 <= y1 {
		x1, y1, x2, y2 = b.Min.X, b.Min.Y, b.Max.X, b.Max.Y
	}

	var sum, n float64
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			// ITU-R BT.601 luma, scaled back from 16-bit channels
			gray := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)) / 257.0
			sum += gray
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

func depthFromBrightness(mean float64) string {
	switch {
	case mean > 180:
		return SkinDepthLight
	case mean > 110:
		return SkinDepthMedium
	default:
		return SkinDepthDeep
	}
}

func hashKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
