package delivery

import (
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/Vovarama1992/moore_demo/internal/ports"
)

type Handlers struct {
	Translate *TranslateHandler
	Speech    *SpeechHandler
	Notice    *NoticeHandler
	TextRules *TextRuleHandler
	History   *HistoryHandler
	Auth      *AuthHandler
}

func RegisterRoutes(
	r chi.Router,
	h Handlers,
	authSvc ports.AuthService,
	requestsPerMinute int,
) {
	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	// --- auth ---
	r.With(httputil.RecoverMiddleware).
		Post("/auth/login", h.Auth.Login)

	// --- public ---
	r.Group(func(pub chi.Router) {
		pub.Use(
			httputil.RecoverMiddleware,
			httprate.LimitByIP(requestsPerMinute, time.Minute),
		)

		// --- перевод ---
		pub.Post("/translate", h.Translate.Translate)
		pub.Post("/demo/fr-to-mo", h.Translate.FrenchToMoore)
		pub.Post("/demo/mo-to-fr", h.Translate.MooreToFrench)

		// --- речь ---
		pub.Post("/synthesize", h.Speech.Synthesize)
		pub.Post("/transcribe", h.Speech.Transcribe)

		// --- уведомление ---
		pub.Get("/notice", h.Notice.Check)
		pub.Post("/notice/ack", h.Notice.Ack)
	})

	// --- protected ---
	r.Group(func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			AuthMiddleware(authSvc),
		)

		// --- правила текста ---
		pr.Get("/text-rules/letters", h.TextRules.ListLetterRules)
		pr.Post("/text-rules/letters", h.TextRules.AddLetterRule)
		pr.Delete("/text-rules/letters", h.TextRules.DeleteLetterRule)
		pr.Get("/text-rules/words", h.TextRules.ListWordRules)
		pr.Post("/text-rules/words", h.TextRules.AddWordRule)
		pr.Delete("/text-rules/words", h.TextRules.DeleteWordRule)
		pr.Post("/text-rules/preview", h.TextRules.Preview)

		// --- история ---
		pr.Get("/history", h.History.List)
		pr.Delete("/history", h.History.DeleteAll)
	})
}
