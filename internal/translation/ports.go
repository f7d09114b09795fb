package translation

import (
	"context"
	"errors"

	"github.com/Vovarama1992/moore_demo/internal/history"
)

const (
	ModePage = "page"
	ModeBook = "book" // литературный перевод, лимит по словам
)

var (
	ErrEmptyText           = errors.New("veuillez entrer du texte à traduire")
	ErrTooManyWords        = errors.New("le texte dépasse la limite de mots")
	ErrUnsupportedLanguage = errors.New("langue non prise en charge")
	ErrUpstream            = errors.New("erreur lors de la traduction")
)

type Request struct {
	Text string
	Src  string
	Tgt  string
	Mode string
}

type Result struct {
	Text         string `json:"text"`
	Preprocessed string `json:"preprocessed,omitempty"`
	Src          string `json:"src_lang"`
	Tgt          string `json:"tgt_lang"`
}

// Client — удалённая модель перевода
type Client interface {
	Translate(ctx context.Context, text, src, tgt string, maxChunkLength int) (string, error)
}

type Recorder interface {
	Add(ctx context.Context, e history.Entry) (int64, error)
}

type Service interface {
	Translate(ctx context.Context, req Request) (Result, error)
}
