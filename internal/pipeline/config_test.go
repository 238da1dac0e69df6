package pipeline

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.BatchSize != 15 {
		t.Errorf("BatchSize = %d, want 15", cfg.BatchSize)
	}
	if cfg.BatchRetries != 2 || cfg.RetryDelay != 2*time.Second {
		t.Errorf("retry tuning = %d/%s", cfg.BatchRetries, cfg.RetryDelay)
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{Workers: 2}.withDefaults()
	if cfg.BatchSize != 15 {
		t.Errorf("zero BatchSize not defaulted: %d", cfg.BatchSize)
	}
	if cfg.Workers != 2 {
		t.Errorf("explicit Workers overridden: %d", cfg.Workers)
	}
	if cfg.MaxTokens == 0 || cfg.Temperature == 0 {
		t.Errorf("model tuning not defaulted: %+v", cfg)
	}
}
