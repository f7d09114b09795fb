package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/go-playground/validator/v10"

	"github.com/Vovarama1992/moore_demo/internal/domain"
	"github.com/Vovarama1992/moore_demo/internal/speech"
	"github.com/Vovarama1992/moore_demo/internal/translation"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON читает тело и прогоняет validate-теги
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// writeError переводит доменные ошибки в HTTP-статусы.
// Тексты — те же, что видит пользователь на странице.
func writeError(w http.ResponseWriter, log *logger.ZapLogger, err error) {
	switch {
	// синтез без аудио: ошибка апстрима, а не запроса
	case errors.Is(err, speech.ErrSynthesis) && errors.Is(err, speech.ErrNoAudio):
		log.Log(logger.LogEntry{Level: "error", Message: "tts returned no audio", Error: err})
		writeMessage(w, http.StatusBadGateway, speech.ErrNoAudio.Error())

	case errors.Is(err, translation.ErrEmptyText),
		errors.Is(err, translation.ErrTooManyWords),
		errors.Is(err, translation.ErrUnsupportedLanguage),
		errors.Is(err, speech.ErrEmptyText),
		errors.Is(err, speech.ErrNoAudio):
		writeMessage(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, speech.ErrNotAudio):
		writeMessage(w, http.StatusUnsupportedMediaType, err.Error())

	case errors.Is(err, speech.ErrAudioTooLarge):
		writeMessage(w, http.StatusRequestEntityTooLarge, err.Error())

	case errors.Is(err, domain.ErrInvalidPassword):
		writeMessage(w, http.StatusUnauthorized, "invalid password")

	case errors.Is(err, translation.ErrUpstream):
		log.Log(logger.LogEntry{Level: "error", Message: "translate upstream", Error: err})
		writeMessage(w, http.StatusBadGateway, translation.ErrUpstream.Error())

	case errors.Is(err, speech.ErrSynthesis):
		log.Log(logger.LogEntry{Level: "error", Message: "tts upstream", Error: err})
		writeMessage(w, http.StatusBadGateway, speech.ErrSynthesis.Error())

	case errors.Is(err, speech.ErrTranscription):
		log.Log(logger.LogEntry{Level: "error", Message: "stt upstream", Error: err})
		writeMessage(w, http.StatusBadGateway, speech.ErrTranscription.Error())

	default:
		log.Log(logger.LogEntry{Level: "error", Message: "internal error", Error: err})
		writeMessage(w, http.StatusInternalServerError, "erreur interne")
	}
}
