package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
)

// StorageService spools uploads to short-lived files so the PDF reader can
// seek them. Every spooled path must be passed to Remove once read.
type StorageService interface {
	Spool(file *multipart.FileHeader) (string, error)
	Remove(path string) error
	EnsureUploadDir() error
}

type storageService struct {
	dir string
}

func NewStorageService(dir string) StorageService {
	return &storageService{dir: dir}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// Spool copies the upload into a new uniquely named file and returns its path.
// Nothing is left behind when the copy fails.
func (s *storageService) Spool(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.dir, "upload_*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create spool file: %w", err)
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(dst.Name())
		if copyErr == nil {
			copyErr = closeErr
		}
		return "", fmt.Errorf("failed to spool upload: %w", copyErr)
	}

	return dst.Name(), nil
}

func (s *storageService) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove spool file: %w", err)
	}
	return nil
}
