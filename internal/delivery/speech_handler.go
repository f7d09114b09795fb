package delivery

import (
	"errors"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/moore_demo/internal/pipeline"
	"github.com/Vovarama1992/moore_demo/internal/speech"
)

type SpeechHandler struct {
	speech   *speech.Service
	pipeline *pipeline.Service
	log      *logger.ZapLogger
	maxBytes int64
}

func NewSpeechHandler(s *speech.Service, p *pipeline.Service, log *logger.ZapLogger, maxBytes int64) *SpeechHandler {
	return &SpeechHandler{
		speech:   s,
		pipeline: p,
		log:      log,
		maxBytes: maxBytes,
	}
}

// POST /synthesize
// body: { "text": "Ne y windga" }
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text" validate:"max=5000"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	audio, err := h.speech.Synthesize(r.Context(), req.Text)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, audio)
}

// POST /transcribe
// multipart: audio_file
func (h *SpeechHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	// запас на заголовки multipart
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1<<20)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, h.log, speech.ErrAudioTooLarge)
			return
		}
		writeMessage(w, http.StatusBadRequest, "invalid multipart: "+err.Error())
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		writeError(w, h.log, speech.ErrNoAudio)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "failed to read file: "+err.Error())
		return
	}

	res, err := h.pipeline.SpeechToFrench(r.Context(), speech.Upload{
		Data:     data,
		Filename: header.Filename,
	})
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
