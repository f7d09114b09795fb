package delivery

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/Vovarama1992/go-utils/logger"

	tr "github.com/Vovarama1992/moore_demo/internal/textrules"
)

type TextRuleHandler struct {
	repo tr.Repo
	log  *logger.ZapLogger
}

func NewTextRuleHandler(repo tr.Repo, log *logger.ZapLogger) *TextRuleHandler {
	return &TextRuleHandler{repo: repo, log: log}
}

type ruleBody struct {
	From string `json:"from" validate:"required,max=64"`
	To   string `json:"to" validate:"max=128"`
}

//
// ----------------------
//   LETTER RULES
// ----------------------
//

// GET /text-rules/letters
func (h *TextRuleHandler) ListLetterRules(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListLetterRules(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /text-rules/letters
// body: { "from": "’", "to": "'" }
func (h *TextRuleHandler) AddLetterRule(w http.ResponseWriter, r *http.Request) {
	var body ruleBody
	if err := decodeJSON(r, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if utf8.RuneCountInString(body.From) != 1 || utf8.RuneCountInString(body.To) != 1 {
		writeMessage(w, http.StatusBadRequest, "from and to must be single characters")
		return
	}

	if err := h.repo.AddLetterRule(r.Context(), body.From, body.To); err != nil {
		writeError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /text-rules/letters
// body: { "from": "’" }
func (h *TextRuleHandler) DeleteLetterRule(w http.ResponseWriter, r *http.Request) {
	var body ruleBody
	if err := decodeJSON(r, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.DeleteLetterRule(r.Context(), body.From); err != nil {
		writeError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

//
// ----------------------
//   WORD RULES
// ----------------------
//

// GET /text-rules/words
func (h *TextRuleHandler) ListWordRules(w http.ResponseWriter, r *http.Request) {
	out, err := h.repo.ListWordRules(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// POST /text-rules/words
// body: { "from": "coucou", "to": "bonjour" }
// Пустой to не принимаем: для удаления есть DELETE.
func (h *TextRuleHandler) AddWordRule(w http.ResponseWriter, r *http.Request) {
	var body ruleBody
	if err := decodeJSON(r, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if !tr.IsWord(body.From) {
		writeMessage(w, http.StatusBadRequest, "from must be a single word")
		return
	}
	if strings.TrimSpace(body.To) == "" {
		writeMessage(w, http.StatusBadRequest, "to must not be empty")
		return
	}

	if err := h.repo.AddWordRule(r.Context(), body.From, body.To); err != nil {
		writeError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DELETE /text-rules/words
// body: { "from": "coucou" }
func (h *TextRuleHandler) DeleteWordRule(w http.ResponseWriter, r *http.Request) {
	var body ruleBody
	if err := decodeJSON(r, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.DeleteWordRule(r.Context(), body.From); err != nil {
		writeError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// POST /text-rules/preview
// body: { "text": <любое JSON-значение> }
// Только встроенная нормализация; не-строки возвращаются как есть.
func (h *TextRuleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text any `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"text": tr.PreprocessValue(body.Text)})
}
