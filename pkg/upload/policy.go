package upload

import "github.com/dmitrymomot/marketkit/pkg/config"

// Policy describes what a call site accepts. Supplied per call; the
// package keeps no mutable defaults.
type Policy struct {
	// MaxSizeMB caps the file size in megabytes.
	MaxSizeMB int64

	// AllowedMIMETypes is the allow-list for the declared content type,
	// lower-case.
	AllowedMIMETypes []string

	// AllowedExtensions is the allow-list for the filename extension,
	// lower-case including the leading dot.
	AllowedExtensions []string
}

// DefaultPolicy is the listing-photo policy: 5MB web images.
func DefaultPolicy() Policy {
	return Policy{
		MaxSizeMB:         5,
		AllowedMIMETypes:  []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
	}
}

type policyConfig struct {
	MaxSizeMB         int64    `env:"UPLOAD_MAX_SIZE_MB" envDefault:"5"`
	AllowedMIMETypes  []string `env:"UPLOAD_ALLOWED_MIME_TYPES" envDefault:"image/jpeg,image/png,image/gif,image/webp"`
	AllowedExtensions []string `env:"UPLOAD_ALLOWED_EXTENSIONS" envDefault:".jpg,.jpeg,.png,.gif,.webp"`
}

// PolicyFromEnv builds a Policy from UPLOAD_* environment variables,
// falling back to the DefaultPolicy values.
func PolicyFromEnv() (Policy, error) {
	var cfg policyConfig
	if err := config.Load(&cfg); err != nil {
		return Policy{}, err
	}

	return Policy{
		MaxSizeMB:         cfg.MaxSizeMB,
		AllowedMIMETypes:  cfg.AllowedMIMETypes,
		AllowedExtensions: cfg.AllowedExtensions,
	}, nil
}
