package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moore_demo/internal/error_notificator"
	"github.com/Vovarama1992/moore_demo/internal/history"
	"github.com/Vovarama1992/moore_demo/internal/lang"
	"github.com/Vovarama1992/moore_demo/internal/textrules"
)

type service struct {
	client   Client
	rules    textrules.Service
	history  Recorder
	notifier error_notificator.Notificator
	log      *logger.ZapLogger

	maxChunkLength int
	bookWordLimit  int
}

func NewService(
	client Client,
	rules textrules.Service,
	history Recorder,
	notifier error_notificator.Notificator,
	log *logger.ZapLogger,
	maxChunkLength int,
	bookWordLimit int,
) Service {
	return &service{
		client:         client,
		rules:          rules,
		history:        history,
		notifier:       notifier,
		log:            log,
		maxChunkLength: maxChunkLength,
		bookWordLimit:  bookWordLimit,
	}
}

func (s *service) Translate(ctx context.Context, req Request) (Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Result{}, ErrEmptyText
	}

	mode := req.Mode
	if mode == "" {
		mode = ModePage
	}
	if mode == ModeBook && CountWords(text) > s.bookWordLimit {
		return Result{}, fmt.Errorf("%w: %d", ErrTooManyWords, s.bookWordLimit)
	}

	src, tgt, err := resolveLanguages(text, req.Src, req.Tgt)
	if err != nil {
		return Result{}, err
	}

	// французский текст — через нормализатор
	input := text
	if textrules.IsFrenchSource(src) {
		input, err = s.rules.Process(ctx, text)
		if err != nil {
			return Result{}, fmt.Errorf("preprocess: %w", err)
		}
	}

	out, err := s.client.Translate(ctx, input, src, tgt, s.maxChunkLength)
	if err != nil {
		s.notifier.Notify(ctx, "translate", err, fmt.Sprintf("%s → %s, %d chars", src, tgt, len(input)))
		return Result{}, err
	}

	res := Result{Text: out, Src: src, Tgt: tgt}
	if input != text {
		res.Preprocessed = input
	}

	if _, err := s.history.Add(ctx, history.Entry{
		SrcLang:      src,
		TgtLang:      tgt,
		Mode:         mode,
		SourceText:   text,
		Preprocessed: res.Preprocessed,
		Translated:   out,
	}); err != nil {
		s.log.Log(logger.LogEntry{Level: "warn", Message: "failed to save translation history", Error: err})
	}

	return res, nil
}

// CountWords — как на странице: слова через пробельные символы
func CountWords(text string) int {
	return len(strings.Fields(text))
}

func resolveLanguages(text, src, tgt string) (string, string, error) {
	if src == "" || src == lang.Auto {
		src = DetectSource(text)
	}
	if tgt == "" {
		tgt = lang.Other(src)
	}
	if !lang.Supported(src) || !lang.Supported(tgt) || src == tgt {
		return "", "", fmt.Errorf("%w: %s → %s", ErrUnsupportedLanguage, src, tgt)
	}
	return src, tgt, nil
}
