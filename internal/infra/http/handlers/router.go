package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/infra/http/middleware"
	"github.com/Abidimam7/leadgen/internal/logger"
)

type RouterConfig struct {
	Suppliers     RecordService[entity.Supplier]
	Leads         RecordService[entity.Lead]
	Campaigns     RecordService[entity.EmailCampaign]
	UploadedLeads UploadedLeadLister
	Chat          ChatExecutor
	Upload        UploadExecutor
	Emails        EmailGenerator
	Health        *HealthHandler

	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	MaxUploadSize  int64
}

// NewRouter builds the HTTP surface. Trailing slashes are optional on every route.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logger.Middleware)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimw.StripSlashes)

	limit := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		limit = func(h http.HandlerFunc) http.Handler { return rl.Handler(h) }
	}

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Handle)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/api/suppliers", NewRecordHandler(cfg.Suppliers).Routes())
	r.Mount("/api/leads", NewRecordHandler(cfg.Leads).Routes())
	r.Mount("/api/email_campaigns", NewRecordHandler(cfg.Campaigns).Routes())

	chat := NewChatHandler(cfg.Chat)
	for _, p := range []string{"/api/chat", "/leads"} {
		r.Get(p, chat.Samples)
		r.Method(http.MethodPost, p, limit(chat.Chat))
	}

	upload := NewUploadHandler(cfg.Upload, cfg.UploadedLeads, cfg.MaxUploadSize)
	r.Post("/api/upload-leads", upload.Upload)
	r.Get("/api/uploaded-leads", upload.ListUploaded)

	emails := NewEmailHandler(cfg.Emails)
	for _, p := range []string{"/generate-emails", "/api/generate-emails"} {
		r.Method(http.MethodPost, p, limit(emails.Generate))
	}

	return r
}
