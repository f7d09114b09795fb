package translation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type HTTPClient struct {
	baseURL string
	httpCli *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpCli: &http.Client{Timeout: timeout},
	}
}

type translateRequest struct {
	Text           string `json:"text"`
	SrcLang        string `json:"src_lang"`
	TgtLang        string `json:"tgt_lang"`
	MaxChunkLength int    `json:"max_chunk_length"`
}

type translateResponse struct {
	TranslatedText string `json:"translated_text"`
	Text           string `json:"text"`
}

func (c *HTTPClient) Translate(ctx context.Context, text, src, tgt string, maxChunkLength int) (string, error) {
	payload, err := json.Marshal(translateRequest{
		Text:           text,
		SrcLang:        src,
		TgtLang:        tgt,
		MaxChunkLength: maxChunkLength,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/translate/", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, truncate(body, 300))
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode: %v", ErrUpstream, err)
	}

	if parsed.TranslatedText != "" {
		return parsed.TranslatedText, nil
	}
	return parsed.Text, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}
