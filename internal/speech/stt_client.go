package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// удалённый сервис всегда получает файл под этим именем
const uploadName = "audio.wav"

type RemoteSTT struct {
	baseURL string
	client  *http.Client
}

func NewRemoteSTT(baseURL string, timeout time.Duration) *RemoteSTT {
	return &RemoteSTT{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *RemoteSTT) Transcribe(ctx context.Context, audio io.Reader, _ string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("audio_file", uploadName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe/", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscription, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d: %s", ErrTranscription, resp.StatusCode, string(body))
	}

	var parsed struct {
		TranslatedText string `json:"translated_text"`
		Text           string `json:"text"`
		Transcription  string `json:"transcription"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrTranscription, err)
	}

	switch {
	case parsed.TranslatedText != "":
		return parsed.TranslatedText, nil
	case parsed.Text != "":
		return parsed.Text, nil
	}
	return parsed.Transcription, nil
}
