package pipeline

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moore_demo/internal/lang"
	"github.com/Vovarama1992/moore_demo/internal/speech"
	"github.com/Vovarama1992/moore_demo/internal/translation"
)

type Speech interface {
	Synthesize(ctx context.Context, text string) (speech.Audio, error)
	Transcribe(ctx context.Context, up speech.Upload) (string, error)
}

type FrenchToMooreResult struct {
	Translation translation.Result `json:"translation"`
	Audio       *speech.Audio      `json:"audio,omitempty"`
	AudioError  string             `json:"audio_error,omitempty"`
}

type SpeechResult struct {
	Transcription    string              `json:"transcription"`
	Translation      *translation.Result `json:"translation,omitempty"`
	TranslationError string              `json:"translation_error,omitempty"`
}

// Service — сценарии вкладок демо-страницы
type Service struct {
	translator translation.Service
	speech     Speech
	log        *logger.ZapLogger
}

func NewService(translator translation.Service, sp Speech, log *logger.ZapLogger) *Service {
	return &Service{translator: translator, speech: sp, log: log}
}

// FrenchToMoore — перевод и, на обычной вкладке, сразу озвучка.
// Ошибка синтеза не роняет перевод.
func (s *Service) FrenchToMoore(ctx context.Context, text, mode string) (FrenchToMooreResult, error) {
	res, err := s.translator.Translate(ctx, translation.Request{
		Text: text,
		Src:  lang.French,
		Tgt:  lang.Moore,
		Mode: mode,
	})
	if err != nil {
		return FrenchToMooreResult{}, err
	}

	out := FrenchToMooreResult{Translation: res}
	if mode == translation.ModeBook || res.Text == "" {
		return out, nil
	}

	audio, err := s.speech.Synthesize(ctx, res.Text)
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "auto synthesis failed", Error: err})
		out.AudioError = speech.ErrSynthesis.Error()
		return out, nil
	}
	out.Audio = &audio
	return out, nil
}

func (s *Service) MooreToFrench(ctx context.Context, text string) (translation.Result, error) {
	return s.translator.Translate(ctx, translation.Request{
		Text: text,
		Src:  lang.Moore,
		Tgt:  lang.French,
	})
}

// SpeechToFrench — распознавание записи на мооре и автоперевод.
func (s *Service) SpeechToFrench(ctx context.Context, up speech.Upload) (SpeechResult, error) {
	text, err := s.speech.Transcribe(ctx, up)
	if err != nil {
		return SpeechResult{}, err
	}

	out := SpeechResult{Transcription: text}
	if text == "" {
		return out, nil
	}

	res, err := s.MooreToFrench(ctx, text)
	if err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "auto translation failed", Error: err})
		out.TranslationError = translation.ErrUpstream.Error()
		return out, nil
	}
	out.Translation = &res
	return out, nil
}
