package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

// Served content type per accepted extension.
var uploadTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
}

var imageExts = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// Accepted extensions per upload kind.
var uploadKinds = map[string][]string{
	"avatar":    imageExts,
	"service":   imageExts,
	"portfolio": append(append([]string(nil), imageExts...), ".pdf"),
}

// UploadService stores user files and hands back their public URL.
type UploadService struct {
	files     ports.FileStore
	publicURL string
	log       zerolog.Logger
}

// NewUploadService returns an UploadService serving files under publicURL + "/uploads/".
func NewUploadService(files ports.FileStore, publicURL string, log zerolog.Logger) *UploadService {
	return &UploadService{files: files, publicURL: strings.TrimRight(publicURL, "/"), log: log}
}

func (s *UploadService) Upload(ctx context.Context, userID string, in ports.UploadInput) (string, error) {
	allowed, ok := uploadKinds[in.Kind]
	if !ok {
		return "", fmt.Errorf("%w: upload type must be one of avatar, service, portfolio", domain.ErrValidation)
	}
	if in.Body == nil {
		return "", fmt.Errorf("%w: file is required", domain.ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(in.Filename))
	if !slices.Contains(allowed, ext) {
		return "", fmt.Errorf("%w: %s files accept %s", domain.ErrValidation, in.Kind, strings.Join(allowed, ", "))
	}

	name := in.Kind + "-" + uuid.NewString() + ext
	if err := s.files.Save(ctx, name, uploadTypes[ext], in.Body); err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	s.log.Info().Str("user_id", userID).Str("file", name).Msg("file uploaded")
	return s.publicURL + "/uploads/" + name, nil
}

// Open returns a stored file with its content type. The type always comes
// from the accepted extension table, never from the store.
func (s *UploadService) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	contentType, ok := servedType(name)
	if !ok {
		return nil, "", domain.ErrFileNotFound
	}
	rc, _, err := s.files.Open(ctx, name)
	if err != nil {
		return nil, "", err
	}
	return rc, contentType, nil
}

// servedType accepts only names Upload could have produced.
func servedType(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", false
	}
	kind, _, ok := strings.Cut(name, "-")
	if !ok {
		return "", false
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(uploadKinds[kind], ext) {
		return "", false
	}
	return uploadTypes[ext], true
}
