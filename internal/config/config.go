package config

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT,default=8080"`
	DatabaseURL string `env:"DATABASE_URL,required=true"`
	AuthSecret  string `env:"AUTH_SECRET,required=true"`

	// удалённые модели
	TranslateURL     string        `env:"TRANSLATE_URL,required=true"`
	SpeechURL        string        `env:"SPEECH_URL,required=true"`
	ReferenceSpeaker string        `env:"REFERENCE_SPEAKER,default=ref_male_17.wav"`
	MaxChunkLength   int           `env:"MAX_CHUNK_LENGTH,default=80"`
	BookWordLimit    int           `env:"BOOK_WORD_LIMIT,default=250"`
	UpstreamTimeout  time.Duration `env:"UPSTREAM_TIMEOUT,default=120s"`
	MaxUploadBytes   int64         `env:"MAX_UPLOAD_BYTES,default=26214400"`

	// STT_PROVIDER: "remote" (по умолчанию) или "whisper"
	STTProvider  string `env:"STT_PROVIDER,default=remote"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE,default=60"`

	// S3 — опционально, архив загруженных аудио
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`

	// Telegram — опционально, алерты админу
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	AdminChatID   int64  `env:"ADMIN_CHAT_ID"`
}

// Load читает .env (если есть) и переменные окружения.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnviron()
}

func FromEnviron() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.TranslateURL = strings.TrimRight(cfg.TranslateURL, "/")
	cfg.SpeechURL = strings.TrimRight(cfg.SpeechURL, "/")
	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxChunkLength <= 0 {
		return fmt.Errorf("MAX_CHUNK_LENGTH must be positive, got %d", c.MaxChunkLength)
	}
	if c.BookWordLimit <= 0 {
		return fmt.Errorf("BOOK_WORD_LIMIT must be positive, got %d", c.BookWordLimit)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	switch c.STTProvider {
	case "remote":
	case "whisper":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when STT_PROVIDER=whisper")
		}
	default:
		return fmt.Errorf("unknown STT_PROVIDER %q", c.STTProvider)
	}
	if c.TelegramToken != "" && c.AdminChatID == 0 {
		return fmt.Errorf("ADMIN_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}
	return nil
}

func (c Config) S3Enabled() bool {
	return c.S3Endpoint != "" && c.S3Bucket != ""
}
