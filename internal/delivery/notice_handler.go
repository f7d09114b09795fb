package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moore_demo/internal/notice"
)

type NoticeHandler struct {
	notice notice.Service
	log    *logger.ZapLogger
}

func NewNoticeHandler(n notice.Service, log *logger.ZapLogger) *NoticeHandler {
	return &NoticeHandler{notice: n, log: log}
}

type noticeRequest struct {
	ClientID string `json:"client_id" validate:"required,max=128"`
}

// GET /notice?client_id=...
func (h *NoticeHandler) Check(w http.ResponseWriter, r *http.Request) {
	req := noticeRequest{ClientID: r.URL.Query().Get("client_id")}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.notice.Check(r.Context(), req.ClientID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, n)
}

// POST /notice/ack
// body: { "client_id": "..." }
func (h *NoticeHandler) Ack(w http.ResponseWriter, r *http.Request) {
	var req noticeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.notice.Ack(r.Context(), req.ClientID); err != nil {
		writeError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
