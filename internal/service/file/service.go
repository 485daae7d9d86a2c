package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"math"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxUploadSize matches the request body limit of the upload endpoints.
const MaxUploadSize = 16 << 20

// Photos of letters above this size are re-encoded before storing.
const maxPhotoSize = 1 << 20

var (
	ErrInvalidFileType = errors.New("invalid file type: only pdf, jpg, jpeg, png allowed")
	ErrFileTooLarge    = fmt.Errorf("file exceeds %d MB", MaxUploadSize>>20)
)

var evidenceExts = []string{".pdf", ".jpg", ".jpeg", ".png"}

type FileService interface {
	// UploadClarificationEvidence stores the supporting letter of a clarification
	UploadClarificationEvidence(ctx context.Context, nip string, file io.Reader, filename string) (string, error)

	// UploadLeaveLetter stores the scanned leave letter recorded by an admin
	UploadLeaveLetter(ctx context.Context, nip string, file io.Reader, filename string) (string, error)

	Open(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
	now     func() time.Time
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
		now:     time.Now,
	}
}

// UploadClarificationEvidence implements FileService.
func (s *fileServiceImpl) UploadClarificationEvidence(ctx context.Context, nip string, file io.Reader, filename string) (string, error) {
	return s.uploadEvidence(ctx, "clarifications", nip, file, filename)
}

// UploadLeaveLetter implements FileService.
func (s *fileServiceImpl) UploadLeaveLetter(ctx context.Context, nip string, file io.Reader, filename string) (string, error) {
	return s.uploadEvidence(ctx, "leaves", nip, file, filename)
}

// uploadEvidence stores file as <folder>/<nip>/<nip>-<timestamp>-<uuid><ext>.
func (s *fileServiceImpl) uploadEvidence(ctx context.Context, folder, nip string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(evidenceExts, ext) {
		return "", ErrInvalidFileType
	}

	buffer, err := io.ReadAll(io.LimitReader(file, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(buffer) > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	contentType := contentTypeOf(ext)
	if ext != ".pdf" && len(buffer) > maxPhotoSize {
		compressed, err := compressImage(buffer, maxPhotoSize)
		if err != nil {
			return "", fmt.Errorf("failed to compress image: %w", err)
		}
		// Always JPEG after compression
		buffer, ext, contentType = compressed, ".jpg", "image/jpeg"
	}

	newFilename := fmt.Sprintf("%s-%d-%s%s", nip, s.now().Unix(), uuid.New().String(), ext)
	path := filepath.ToSlash(filepath.Join(folder, nip, newFilename))

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(buffer), path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload %s evidence: %w", strings.TrimSuffix(folder, "s"), err)
	}
	return uploadedPath, nil
}

// Open implements FileService.
func (s *fileServiceImpl) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

func contentTypeOf(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	default:
		return "image/jpeg"
	}
}

// ==================== HELPER FUNCTIONS ====================

// compressImage re-encodes a photo as JPEG, lowering quality and then
// dimensions until it fits in maxSize.
func compressImage(buffer []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var compressed []byte
	for quality := 85; quality >= 50; quality -= 5 {
		compressed, err = encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
		if len(compressed) <= maxSize {
			return compressed, nil
		}
	}

	// Still too large, shrink towards the target keeping the aspect ratio
	bounds := img.Bounds()
	ratio := math.Sqrt(float64(maxSize) / float64(len(compressed)))
	width := max(int(float64(bounds.Dx())*ratio), 600)
	height := max(int(float64(bounds.Dy())*ratio), 400)

	return encodeJPEG(resizeImage(img, width, height), 70)
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// Use CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
