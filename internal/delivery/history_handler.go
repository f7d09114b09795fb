package delivery

import (
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moore_demo/internal/history"
)

type HistoryHandler struct {
	history history.Service
	log     *logger.ZapLogger
}

func NewHistoryHandler(h history.Service, log *logger.ZapLogger) *HistoryHandler {
	return &HistoryHandler{history: h, log: log}
}

// GET /history?limit=20
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// DELETE /history
func (h *HistoryHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.history.DeleteAll(r.Context()); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
