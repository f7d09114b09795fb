package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
)

type RemoteTTS struct {
	baseURL          string
	referenceSpeaker string
	httpCli          *http.Client
}

func NewRemoteTTS(baseURL, referenceSpeaker string, timeout time.Duration) *RemoteTTS {
	return &RemoteTTS{
		baseURL:          baseURL,
		referenceSpeaker: referenceSpeaker,
		httpCli:          &http.Client{Timeout: timeout},
	}
}

type inferenceResponse struct {
	Success         bool     `json:"success"`
	AudioURL        string   `json:"audio_url"`
	DurationSeconds *float64 `json:"duration_seconds"`
}

// TEXT → SPEECH
func (t *RemoteTTS) Synthesize(ctx context.Context, text string) (Audio, error) {
	payload, err := json.Marshal(map[string]string{
		"text":              text,
		"reference_speaker": t.referenceSpeaker,
	})
	if err != nil {
		return Audio{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/inference/", bytes.NewReader(payload))
	if err != nil {
		return Audio{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpCli.Do(req)
	if err != nil {
		return Audio{}, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode >= 300 {
		return Audio{}, fmt.Errorf("%w: status %d: %s", ErrSynthesis, resp.StatusCode, string(body))
	}

	var parsed inferenceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Audio{}, fmt.Errorf("%w: decode: %v", ErrSynthesis, err)
	}

	switch {
	case parsed.Success && parsed.AudioURL != "":
		// новый формат: имя файла, скачивается через /tts/download/
		return Audio{
			URL:             t.baseURL + "/tts/download/" + url.PathEscape(parsed.AudioURL),
			DurationSeconds: parsed.DurationSeconds,
		}, nil
	case parsed.AudioURL != "":
		// старый формат: путь от корня сервиса
		return Audio{URL: t.baseURL + parsed.AudioURL}, nil
	}

	// сервис ответил, но без аудио: это и сбой синтеза, и "нет аудио" для страницы
	return Audio{}, fmt.Errorf("%w: %w", ErrSynthesis, ErrNoAudio)
}
