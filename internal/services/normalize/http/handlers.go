// Package http provides http transport for normalize
package http

import (
	stdhttp "net/http"
	"sync"

	"github.com/go-playground/validator/v10"

	"alaynorm/internal/core/normalize"
	phttp "alaynorm/internal/platform/net/http"
	"alaynorm/internal/platform/net/http/bind"
	"alaynorm/internal/services/normalize/domain"
	svc "alaynorm/internal/services/normalize/service"
)

var registerOnce sync.Once

// registerRules adds the "stage" tag used on skip lists
func registerRules() {
	registerOnce.Do(func() {
		err := bind.Register("stage", "{0} must name a known stage", func(fl validator.FieldLevel) bool {
			_, ok := normalize.ParseStage(fl.Field().String())
			return ok
		})
		if err != nil {
			panic(err)
		}
	})
}

// Register mounts normalize endpoints on the given router
func Register(r phttp.Router, s svc.Service) {
	registerRules()
	h := &handlers{svc: s}
	phttp.PostJSON[domain.NormalizeInput](r, "/normalize", h.normalize)
	phttp.PostJSON[domain.TokenizeInput](r, "/tokenize", h.tokenize)
	phttp.PostJSON[domain.CountsInput](r, "/counts", h.counts)
	phttp.GetJSON(r, "/lexicon", h.lexicon)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /normalize/normalize Normalize normalizeText
// @Summary Normalize informal Indonesian text
// @Tags Normalize
// @Accept json
// @Produce json
// @Param payload body domain.NormalizeInput true "Text"
// @Success 200 {object} domain.NormalizeOutput "ok"
// @Router /normalize/normalize [post]
func (h *handlers) normalize(r *stdhttp.Request, in domain.NormalizeInput) (any, error) {
	return h.svc.Normalize(r.Context(), in)
}

// swagger:route POST /normalize/tokenize Normalize normalizeTokenize
// @Summary Split text into word-like and other tokens
// @Tags Normalize
// @Accept json
// @Produce json
// @Param payload body domain.TokenizeInput true "Text"
// @Success 200 {object} domain.TokenizeOutput "ok"
// @Router /normalize/tokenize [post]
func (h *handlers) tokenize(r *stdhttp.Request, in domain.TokenizeInput) (any, error) {
	return h.svc.Tokenize(r.Context(), in)
}

// swagger:route POST /normalize/counts Normalize normalizeCounts
// @Summary Count leet and slang events
// @Tags Normalize
// @Accept json
// @Produce json
// @Param payload body domain.CountsInput true "Text"
// @Success 200 {object} domain.CountsOutput "ok"
// @Router /normalize/counts [post]
func (h *handlers) counts(r *stdhttp.Request, in domain.CountsInput) (any, error) {
	return h.svc.Counts(r.Context(), in)
}

// swagger:route GET /normalize/lexicon Normalize normalizeLexicon
// @Summary Lexicon origin and sizes
// @Tags Normalize
// @Produce json
// @Success 200 {object} lexdomain.Info "ok"
// @Router /normalize/lexicon [get]
func (h *handlers) lexicon(r *stdhttp.Request) (any, error) {
	return h.svc.Lexicon(r.Context())
}
