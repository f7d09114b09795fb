package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moore_demo/internal/pipeline"
	"github.com/Vovarama1992/moore_demo/internal/translation"
)

type TranslateHandler struct {
	translator translation.Service
	pipeline   *pipeline.Service
	log        *logger.ZapLogger
}

func NewTranslateHandler(translator translation.Service, p *pipeline.Service, log *logger.ZapLogger) *TranslateHandler {
	return &TranslateHandler{
		translator: translator,
		pipeline:   p,
		log:        log,
	}
}

type translateRequest struct {
	Text    string `json:"text" validate:"max=20000"`
	SrcLang string `json:"src_lang" validate:"omitempty,oneof=fra_Latn mos_Latn auto"`
	TgtLang string `json:"tgt_lang" validate:"omitempty,oneof=fra_Latn mos_Latn"`
	Mode    string `json:"mode" validate:"omitempty,oneof=page book"`
}

// POST /translate
// body: { "text": "Bienvenue", "src_lang": "fra_Latn", "tgt_lang": "mos_Latn" }
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.translator.Translate(r.Context(), translation.Request{
		Text: req.Text,
		Src:  req.SrcLang,
		Tgt:  req.TgtLang,
		Mode: req.Mode,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// POST /demo/fr-to-mo
// body: { "text": "...", "mode": "page" | "book" }
func (h *TranslateHandler) FrenchToMoore(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.pipeline.FrenchToMoore(r.Context(), req.Text, req.Mode)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// POST /demo/mo-to-fr
// body: { "text": "..." }
func (h *TranslateHandler) MooreToFrench(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.pipeline.MooreToFrench(r.Context(), req.Text)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"translation": res})
}
