package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/aurelia-labs/questionbank/internal/auth"
	"github.com/aurelia-labs/questionbank/internal/question"
)

// NewRouter mounts the service routes. tokens may be nil, in which case the
// token endpoint is absent and only Basic credentials are accepted.
func NewRouter(svc *question.Service, an *auth.Authenticator, tokens *auth.TokenService) chi.Router {
	r := chi.NewRouter()

	r.Get("/", HealthHandler())
	if tokens != nil {
		r.Post("/auth/token", auth.TokenHandler(an, tokens))
	}

	r.Group(func(pr chi.Router) {
		pr.Use(auth.Middleware(an, tokens))
		pr.Get("/questions", ListQuestionsHandler(svc))
		pr.Post("/question", CreateQuestionHandler(svc))
	})

	return r
}
