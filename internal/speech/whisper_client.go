package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// WhisperSTT — запасной распознаватель через OpenAI (STT_PROVIDER=whisper)
type WhisperSTT struct {
	client *openai.Client
}

func NewWhisperSTT(apiKey string) *WhisperSTT {
	return &WhisperSTT{client: openai.NewClient(apiKey)}
}

func (w *WhisperSTT) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if filename == "" {
		filename = uploadName
	}

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("%w: whisper: %v", ErrTranscription, err)
	}
	return resp.Text, nil
}
