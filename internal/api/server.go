package api

import (
	"net/http"
	"time"

	apispec "github.com/futig/rfp-backend/docs"
	"github.com/futig/rfp-backend/internal/api/docs"
	knowledgeapi "github.com/futig/rfp-backend/internal/api/knowledge"
	"github.com/futig/rfp-backend/internal/api/middleware"
	proposalapi "github.com/futig/rfp-backend/internal/api/proposal"
	rfpapi "github.com/futig/rfp-backend/internal/api/rfp"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handlers struct {
	Knowledge *knowledgeapi.Handler
	RFP       *rfpapi.Handler
	Proposal  *proposalapi.Handler
}

type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(handlers Handlers, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                   // Recover from panics
	r.Use(chimiddleware.RequestID)                   // Add request ID
	r.Use(middleware.Logger(logger))                 // Log requests
	r.Use(middleware.CORS(cfg.AllowedOrigins))       // Handle CORS
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r, apispec.SwaggerYAML)

	// Register routes
	knowledgeapi.RegisterRoutes(r, handlers.Knowledge)
	rfpapi.RegisterRoutes(r, handlers.RFP)
	proposalapi.RegisterRoutes(r, handlers.Proposal)

	return r
}
