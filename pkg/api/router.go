package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/splitkit/pkg/entry"
	"github.com/dmitrymomot/splitkit/pkg/httpserver"
	"github.com/dmitrymomot/splitkit/pkg/i18n"
	"github.com/dmitrymomot/splitkit/pkg/logger"
	"github.com/dmitrymomot/splitkit/pkg/requestid"
	"github.com/dmitrymomot/splitkit/pkg/validator"
)

// DefaultMaxBodySize caps request bodies at 1 MiB.
const DefaultMaxBodySize int64 = 1 << 20

type options struct {
	translator  *i18n.Translator
	logger      *slog.Logger
	maxBodySize int64
}

// Option configures the router.
type Option func(*options)

// WithTranslator renders failures through tr. Without it the rules' English
// default messages are returned.
func WithTranslator(tr *i18n.Translator) Option {
	return func(o *options) { o.translator = tr }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxBodySize overrides DefaultMaxBodySize. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// NewRouter builds the HTTP handler serving v.
func NewRouter(v *entry.Validator, opts ...Option) (http.Handler, error) {
	if v == nil {
		return nil, ErrNilValidator
	}
	o := &options{logger: logger.Nop(), maxBodySize: DefaultMaxBodySize}
	for _, opt := range opts {
		opt(o)
	}
	h := &handlers{
		validator:   v,
		translator:  o.translator,
		log:         o.logger.With(logger.Component("api")),
		maxBodySize: o.maxBodySize,
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))

	r.Get("/health", httpserver.HealthCheckHandler(h.log))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rules", h.rules)
		r.Route("/validate", func(r chi.Router) {
			r.Post("/profile", validateHandler(h, v.ValidateProfile))
			r.Post("/group", validateHandler(h, v.ValidateGroup))
			r.Post("/expense", validateHandler(h, v.ValidateExpense))
		})
	})

	return r, nil
}

type handlers struct {
	validator   *entry.Validator
	translator  *i18n.Translator
	log         *slog.Logger
	maxBodySize int64
}

func validateHandler[T any](h *handlers, validate func(context.Context, T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := http.MaxBytesReader(w, r.Body, h.maxBodySize)
		record, err := entry.Decode[T](body, entry.FormatJSON)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				h.fail(w, r, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, err)
				return
			}
			h.fail(w, r, http.StatusBadRequest, CodeMalformedBody, err)
			return
		}

		err = validate(r.Context(), record)
		switch {
		case err == nil:
			h.respond(w, r, http.StatusOK, Verdict{Valid: true})
		case validator.IsValidationError(err):
			lang := h.language(r)
			w.Header().Set("Content-Language", lang)
			h.respond(w, r, http.StatusUnprocessableEntity, Verdict{
				Errors: entry.Localize(r.Context(), h.translator, lang, err),
			})
		default:
			h.fail(w, r, http.StatusInternalServerError, CodeInternal, err)
		}
	}
}

func (h *handlers) rules(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, h.validator.RuleNames())
}

func (h *handlers) language(r *http.Request) string {
	if h.translator == nil {
		return i18n.DefaultLanguage
	}
	return h.translator.Match(r.Header.Get("Accept-Language"))
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
		msg = http.StatusText(status)
	}
	h.respond(w, r, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: msg}})
}

func (h *handlers) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := writeJSON(w, status, body); err != nil {
		h.log.WarnContext(r.Context(), "failed to write response", logger.Error(err))
	}
}
