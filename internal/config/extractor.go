package config

import (
	"os"
	"sync"
)

type ExtractorConfig struct {
	BaseURL string
	APIKey  string
}

var (
	extractorConfig *ExtractorConfig
	extractorOnce   sync.Once
)

func LoadExtractorConfig() *ExtractorConfig {
	extractorOnce.Do(func() {
		extractorConfig = &ExtractorConfig{
			BaseURL: os.Getenv("EXTRACTOR_URL"),
			APIKey:  os.Getenv("EXTRACTOR_API_KEY"),
		}
	})
	return extractorConfig
}
