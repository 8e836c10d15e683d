package config

import (
	"os"
	"sync"
)

type ScorerConfig struct {
	BaseURL string
	APIKey  string
}

var (
	scorerConfig *ScorerConfig
	scorerOnce   sync.Once
)

func LoadScorerConfig() *ScorerConfig {
	scorerOnce.Do(func() {
		scorerConfig = &ScorerConfig{
			BaseURL: os.Getenv("SCORER_URL"),
			APIKey:  os.Getenv("SCORER_API_KEY"),
		}
	})
	return scorerConfig
}
