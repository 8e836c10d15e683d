package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/config"
)

// StorageServiceInterface is the CV bucket: it stores one binary per upload
// and hands back a publicly resolvable URL.
type StorageServiceInterface interface {
	StoreCV(userID uuid.UUID, filename string, data []byte) (string, error)
}

// StorageService keeps uploads on local disk under Root/Bucket, keyed by
// {userId}/{userId}-{timestamp}.{ext}.
type StorageService struct {
	root    string
	bucket  string
	baseURL string
}

func NewStorageService() *StorageService {
	cfg := config.LoadStorageConfig()
	return &StorageService{
		root:    cfg.Root,
		bucket:  cfg.Bucket,
		baseURL: cfg.PublicBaseURL,
	}
}

func (s *StorageService) StoreCV(userID uuid.UUID, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s-%d%s", userID, userID, time.Now().UnixMilli(), ext)

	fullPath := filepath.Join(s.root, s.bucket, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store CV: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.baseURL, "/"), s.bucket, key), nil
}
