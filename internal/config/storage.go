package config

import (
	"os"
	"sync"
)

type StorageConfig struct {
	// Root is the directory holding uploaded CV binaries.
	Root string
	// Bucket is the logical bucket name, also the path segment under Root.
	Bucket string
	// PublicBaseURL prefixes the publicly resolvable URL of stored files.
	PublicBaseURL string
}

var (
	storageConfig *StorageConfig
	storageOnce   sync.Once
)

func LoadStorageConfig() *StorageConfig {
	storageOnce.Do(func() {
		root := os.Getenv("STORAGE_ROOT")
		if root == "" {
			root = "./uploads"
		}
		bucket := os.Getenv("STORAGE_CV_BUCKET")
		if bucket == "" {
			bucket = "candidate-cvs"
		}
		storageConfig = &StorageConfig{
			Root:          root,
			Bucket:        bucket,
			PublicBaseURL: os.Getenv("STORAGE_PUBLIC_URL"),
		}
	})
	return storageConfig
}
