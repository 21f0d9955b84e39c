package service

import (
	"time"

	"alaynorm/internal/platform/config"
)

// Config holds configuration options for a batch run
type Config struct {
	PageSize   int           // rows per page; <=0 -> 500
	MaxPages   int           // stop after this many pages; 0 = unlimited
	MaxRetries int           // attempts per read or write; <=0 -> 1
	RetryBase  time.Duration // base backoff; <=0 -> 500ms
	DryRun     bool          // normalize and count but write nothing
	PageDelay  time.Duration // optional sleep between pages
}

// FromConfig reads the batch options with the BATCH_ prefix
func FromConfig(cfg config.Conf) Config {
	b := cfg.Prefix("BATCH_")
	return Config{
		PageSize:   b.MayInt("PAGE_SIZE", 500),
		MaxPages:   b.MayInt("MAX_PAGES", 0),
		MaxRetries: b.MayInt("RETRIES", 3),
		RetryBase:  b.MayDuration("RETRY_BASE", 500*time.Millisecond),
		DryRun:     b.MayBool("DRY_RUN", false),
		PageDelay:  b.MayDuration("PAGE_DELAY", 0),
	}
}
