package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/sid2487/Instagram-Clone/internal/models"
	"github.com/sid2487/Instagram-Clone/internal/observability"
)

const (
	// MaxUploadSizeBytes caps a single image upload.
	MaxUploadSizeBytes = 10 << 20

	maxImageSize = 1080
	jpegQuality  = 82
	webpQuality  = 70
)

// SaveImageInput is a validated-on-entry upload payload.
type SaveImageInput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SavedImage points at the stored variants of one upload.
type SavedImage struct {
	Name    string
	URL     string
	WebPURL string
	Width   int
	Height  int
}

// MediaStore turns raw uploads into normalized JPEG and WebP variants on
// a BlobStore.
type MediaStore struct {
	blobs   BlobStore
	baseURL string
}

func NewMediaStore(blobs BlobStore, baseURL string) *MediaStore {
	if baseURL == "" {
		baseURL = "/media"
	}
	return &MediaStore{
		blobs:   blobs,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SaveImage validates and transcodes an upload. Images larger than 1080px
// on either side are scaled down to fit; both a JPEG and a WebP variant
// are written under a random name.
func (m *MediaStore) SaveImage(in SaveImageInput) (*SavedImage, error) {
	if len(in.Content) == 0 {
		return nil, models.NewValidationError("No file uploaded")
	}
	if len(in.Content) > MaxUploadSizeBytes {
		return nil, models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", MaxUploadSizeBytes>>20))
	}

	detected := http.DetectContentType(in.Content)
	if !isAllowedImageMIME(detected) {
		return nil, models.NewValidationError("Invalid image type")
	}
	if provided := normalizeContentType(in.ContentType); strings.HasPrefix(provided, "image/") && !isMatchingContentType(provided, detected) {
		return nil, models.NewValidationError("Image content type mismatch")
	}

	decoded, _, err := image.Decode(bytes.NewReader(in.Content))
	if err != nil {
		return nil, models.NewValidationError("Invalid image file")
	}

	fitted := resizeToFit(decoded, maxImageSize, maxImageSize)
	bounds := fitted.Bounds()

	name := uuid.NewString()
	jpegName := name + ".jpg"
	webpName := name + ".webp"

	jpegBytes, err := timedEncode("jpeg", func() ([]byte, error) { return encodeJPEG(fitted, jpegQuality) })
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	webpBytes, err := timedEncode("webp", func() ([]byte, error) { return encodeWebP(fitted, webpQuality) })
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	if err := m.blobs.Put(jpegName, jpegBytes); err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := m.blobs.Put(webpName, webpBytes); err != nil {
		_ = m.blobs.Remove(jpegName)
		return nil, models.NewInternalError(err)
	}

	return &SavedImage{
		Name:    name,
		URL:     m.baseURL + "/" + jpegName,
		WebPURL: m.baseURL + "/" + webpName,
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
	}, nil
}

// Remove deletes both stored variants of a previously saved image.
func (m *MediaStore) Remove(name string) error {
	jerr := m.blobs.Remove(name + ".jpg")
	werr := m.blobs.Remove(name + ".webp")
	if jerr != nil {
		return jerr
	}
	return werr
}

func timedEncode(format string, encode func() ([]byte, error)) ([]byte, error) {
	start := time.Now()
	out, err := encode()
	observability.MediaTranscodeLatency.WithLabelValues(format).Observe(time.Since(start).Seconds())
	return out, err
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scale := float64(maxWidth) / float64(w)
	if s := float64(maxHeight) / float64(h); s < scale {
		scale = s
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isAllowedImageMIME(contentType string) bool {
	switch normalizeContentType(contentType) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}

func isMatchingContentType(provided, detected string) bool {
	p := normalizeContentType(provided)
	d := normalizeContentType(detected)
	if p == d {
		return true
	}
	return (p == "image/jpg" && d == "image/jpeg") || (p == "image/jpeg" && d == "image/jpg")
}
