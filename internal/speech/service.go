package speech

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"

	"github.com/Vovarama1992/moore_demo/internal/error_notificator"
)

// MediaRecorder в браузерах пишет webm/ogg, mimetype видит их как video/*
var containerTypes = map[string]bool{
	"video/webm":      true,
	"video/ogg":       true,
	"application/ogg": true,
}

// === Единый сервис (и для стт и для ттс) ===

type Service struct {
	stt      STTClient
	tts      TTSClient
	archive  Archive
	notifier error_notificator.Notificator
	log      *logger.ZapLogger
	maxBytes int64
}

// archive может быть nil — тогда записи не сохраняются
func NewService(
	stt STTClient,
	tts TTSClient,
	archive Archive,
	notifier error_notificator.Notificator,
	log *logger.ZapLogger,
	maxBytes int64,
) *Service {
	return &Service{
		stt:      stt,
		tts:      tts,
		archive:  archive,
		notifier: notifier,
		log:      log,
		maxBytes: maxBytes,
	}
}

func (s *Service) Synthesize(ctx context.Context, text string) (Audio, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Audio{}, ErrEmptyText
	}

	audio, err := s.tts.Synthesize(ctx, text)
	if err != nil {
		s.notifier.Notify(ctx, "tts", err, fmt.Sprintf("%d chars", len(text)))
		return Audio{}, err
	}
	return audio, nil
}

func (s *Service) Transcribe(ctx context.Context, up Upload) (string, error) {
	if len(up.Data) == 0 {
		return "", ErrNoAudio
	}
	if s.maxBytes > 0 && int64(len(up.Data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %s", ErrAudioTooLarge, humanize.Bytes(uint64(len(up.Data))))
	}

	mt := mimetype.Detect(up.Data)
	if !IsAudio(mt) {
		return "", fmt.Errorf("%w: %s", ErrNotAudio, mt.String())
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("transcribe upload %s (%s)", humanize.Bytes(uint64(len(up.Data))), mt.String()),
	})

	if s.archive != nil {
		if _, err := s.archive.SaveAudio(ctx, up.Data, mt.String(), mt.Extension()); err != nil {
			s.log.Log(logger.LogEntry{Level: "warn", Message: "failed to archive audio", Error: err})
		}
	}

	text, err := s.stt.Transcribe(ctx, bytes.NewReader(up.Data), up.Filename)
	if err != nil {
		s.notifier.Notify(ctx, "stt", err, fmt.Sprintf("upload %s", humanize.Bytes(uint64(len(up.Data)))))
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func IsAudio(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "audio/") || containerTypes[m.String()] {
			return true
		}
	}
	return false
}
