package app

import (
	"time"

	cmnenv "mediahub/server/common/env"
	"mediahub/server/media/service"
)

const DefaultBaseURL = "http://localhost:8080/api/media"

type Config struct {
	BaseURL            string
	HTTPTimeout        time.Duration
	InsecureSkipVerify bool
	LogLevel           string
}

func LoadConfig() Config {
	return Config{
		BaseURL:            cmnenv.String("MEDIA_API_BASE", DefaultBaseURL),
		HTTPTimeout:        cmnenv.Millis("MEDIA_HTTP_TIMEOUT_MS", 0),
		InsecureSkipVerify: cmnenv.Bool("MEDIA_INSECURE_SKIP_VERIFY", false),
		LogLevel:           cmnenv.String("LOG_LEVEL", "info"),
	}
}

func NewMediaClient(cfg Config) *service.MediaClient {
	return service.NewMediaClient(service.Options{
		BaseURL:            cfg.BaseURL,
		Timeout:            cfg.HTTPTimeout,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	})
}
