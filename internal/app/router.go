package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/myenglish-dictation/internal/config"
	"github.com/heartmarshall/myenglish-dictation/internal/observe"
	"github.com/heartmarshall/myenglish-dictation/internal/transport/middleware"
	"github.com/heartmarshall/myenglish-dictation/internal/transport/rest"
)

type routerDeps struct {
	dictation *rest.DictationHandler
	phrases   *rest.PhraseHandler
	health    *rest.HealthHandler
	metrics   *observe.Metrics

	// metricsHandler serves the scrape endpoint; nil disables it.
	metricsHandler http.Handler
	metricsPath    string

	// scoringLimit throttles submit and preview; nil disables it.
	scoringLimit middleware.Middleware

	auth middleware.Middleware
	cors config.CORSConfig
	log  *slog.Logger
}

// newRouter registers every route. Health checks and the scrape endpoint bypass the
// API middleware chain.
func newRouter(d routerDeps) http.Handler {
	api := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc, mws ...middleware.Middleware) {
		api.Handle(pattern, observe.InstrumentHandler(d.metrics, pattern, middleware.Chain(mws...)(h)))
	}

	handle("POST /dictation/attempts", d.dictation.Submit, d.scoringLimit)
	handle("POST /dictation/attempts/preview", d.dictation.Preview, d.scoringLimit)
	handle("GET /dictation/attempts", d.dictation.ListAttempts)
	handle("GET /dictation/attempts/{id}", d.dictation.GetAttempt)
	handle("GET /dictation/mastery", d.dictation.ListMastery)

	handle("GET /phrases/{id}", d.phrases.Get)
	handle("PUT /phrases/{id}", d.phrases.Put)
	handle("GET /lessons/{id}/phrases", d.phrases.ListByLesson)

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.log),
		middleware.CORS(d.cors),
		d.auth,
		middleware.Logger(d.log),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", d.health.Live)
	root.HandleFunc("GET /ready", d.health.Ready)
	root.HandleFunc("GET /health", d.health.Health)
	if d.metricsHandler != nil {
		root.Handle("GET "+d.metricsPath, d.metricsHandler)
	}
	root.Handle("/", chain(api))

	return root
}
