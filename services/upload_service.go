package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"blogapi/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// UploadRule is the allow-list and size ceiling one kind of attachment must satisfy.
// Empty Extensions or MIMETypes skip that check.
type UploadRule struct {
	Name       string
	Extensions []string
	MIMETypes  []string
	MaxSizeMB  int64
}

var (
	ImageRule = UploadRule{
		Name:       "image",
		Extensions: []string{".jpg", ".jpeg", ".png", ".gif"},
		MIMETypes:  []string{"image/jpeg", "image/png", "image/gif"},
		MaxSizeMB:  10,
	}
	VideoRule = UploadRule{
		Name:       "video",
		Extensions: []string{".mp4", ".mov"},
		MIMETypes:  []string{"video/mp4", "video/quicktime"},
		MaxSizeMB:  50,
	}
)

func (r UploadRule) maxBytes() int64 {
	return r.MaxSizeMB * 1024 * 1024
}

type UploadService struct {
	dir       string
	urlPrefix string
}

// NewUploadService stores files under dir and hands out references rooted at urlPrefix.
func NewUploadService(dir, urlPrefix string) *UploadService {
	return &UploadService{dir: dir, urlPrefix: "/" + strings.Trim(urlPrefix, "/")}
}

func (s *UploadService) Dir() string {
	return s.dir
}

// Validate checks extension, declared content type, size and sniffed content against rule.
func (s *UploadService) Validate(file *multipart.FileHeader, rule UploadRule) error {
	if file == nil {
		return apperrors.Validation(fmt.Sprintf("Missing %s file", rule.Name), nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(rule.Extensions) > 0 && !contains(rule.Extensions, ext) {
		return apperrors.Validation(fmt.Sprintf("Invalid %s file type. Allowed: %s", rule.Name, strings.Join(rule.Extensions, ", ")), nil)
	}

	// clients that send no type or the generic one leave the decision to the content
	declared := declaredType(file)
	untyped := declared == "" || declared == "application/octet-stream"
	if len(rule.MIMETypes) > 0 && !untyped && !contains(rule.MIMETypes, declared) {
		return apperrors.Validation(fmt.Sprintf("Invalid %s file type. Allowed: %s", rule.Name, strings.Join(rule.MIMETypes, ", ")), nil)
	}

	if rule.MaxSizeMB > 0 && file.Size > rule.maxBytes() {
		return apperrors.Validation(fmt.Sprintf("File too large (max %dMB)", rule.MaxSizeMB), nil)
	}

	return s.checkContent(file, rule, untyped)
}

// Store validates file and saves it. It returns the public reference of the stored file.
func (s *UploadService) Store(file *multipart.FileHeader, rule UploadRule) (string, error) {
	if err := s.Validate(file, rule); err != nil {
		return "", err
	}
	return s.Save(file, rule)
}

// Save writes a file that already passed Validate under a fresh unique name, keeping its
// extension, and returns the public reference.
func (s *UploadService) Save(file *multipart.FileHeader, rule UploadRule) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := s.write(file, filepath.Join(s.dir, name)); err != nil {
		return "", err
	}

	ref := path.Join(s.urlPrefix, name)
	log.Printf("Stored %s upload %q as %s (%d bytes)", rule.Name, file.Filename, ref, file.Size)
	return ref, nil
}

// Remove deletes a previously stored reference. Unknown references are ignored.
func (s *UploadService) Remove(ref string) error {
	if ref == "" || !strings.HasPrefix(ref, s.urlPrefix+"/") {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, path.Base(ref)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload %s: %w", ref, err)
	}
	return nil
}

func (s *UploadService) write(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("write upload file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close upload file: %w", err)
	}
	return nil
}

// checkContent rejects files whose bytes are recognisably something other than the allowed types.
// Content the sniffer cannot identify is left to the declared type, unless there is none.
func (s *UploadService) checkContent(file *multipart.FileHeader, rule UploadRule, untyped bool) error {
	if len(rule.MIMETypes) == 0 {
		return nil
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return fmt.Errorf("sniff upload: %w", err)
	}
	if detected.Is("application/octet-stream") && !untyped {
		return nil
	}

	for _, allowed := range rule.MIMETypes {
		if detected.Is(allowed) {
			return nil
		}
	}
	return apperrors.Validation(fmt.Sprintf("File content (%s) is not an allowed %s type", detected.String(), rule.Name), nil)
}

func declaredType(file *multipart.FileHeader) string {
	mediaType, _, err := mime.ParseMediaType(file.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return strings.ToLower(mediaType)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
