package domain

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Vovarama1992/moore_demo/internal/ports"
)

type AudioArchive struct {
	client ports.S3Client
	now    func() time.Time
}

// NewAudioArchive — архив загруженных для распознавания записей
func NewAudioArchive(client ports.S3Client) *AudioArchive {
	return &AudioArchive{client: client, now: time.Now}
}

// ObjectKey — путь в бакете
func (s *AudioArchive) ObjectKey(ext string) string {
	date := s.now().UTC().Format("2006-01-02")
	return fmt.Sprintf("stt/%s/%s%s", date, uuid.NewString(), ext)
}

func (s *AudioArchive) SaveAudio(ctx context.Context, data []byte, contentType, ext string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty audio")
	}
	key := s.ObjectKey(ext)
	return s.client.PutObject(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
}
