// Package config loads configuration structs from environment variables
// using caarlos0/env struct tags. A local .env file, when present, is
// picked up once per process via godotenv before the first parse.
//
// Example:
//
//	type UploadConfig struct {
//		MaxSizeMB  int64    `env:"UPLOAD_MAX_SIZE_MB" envDefault:"5"`
//		MIMETypes  []string `env:"UPLOAD_ALLOWED_MIME_TYPES" envDefault:"image/jpeg,image/png"`
//	}
//
//	var cfg UploadConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// Load never mutates process state beyond reading the environment; the
// resulting structs are plain values the caller owns.
package config
