package speech

import (
	"context"
	"errors"
	"io"
)

var (
	ErrEmptyText     = errors.New("aucun texte à synthétiser")
	ErrNoAudio       = errors.New("aucun fichier audio disponible")
	ErrNotAudio      = errors.New("le fichier n'est pas un audio")
	ErrAudioTooLarge = errors.New("fichier audio trop volumineux")
	ErrSynthesis     = errors.New("erreur lors de la synthèse vocale")
	ErrTranscription = errors.New("erreur lors de la transcription")
)

// Audio — результат синтеза: ссылка на скачивание у удалённого сервиса
type Audio struct {
	URL             string   `json:"url"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty"`
}

// Upload — запись с микрофона или загруженный файл
type Upload struct {
	Data     []byte
	Filename string
}

type STTClient interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) // голос → текст
}

type TTSClient interface {
	Synthesize(ctx context.Context, text string) (Audio, error) // текст → голос
}

// Archive — куда складываем загруженные записи (S3)
type Archive interface {
	SaveAudio(ctx context.Context, data []byte, contentType, ext string) (string, error)
}
