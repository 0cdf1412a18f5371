package http

import (
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/Killercavin/HealthInfoSystem/internal/his/service"
	"github.com/Killercavin/HealthInfoSystem/internal/his/store"
	"github.com/Killercavin/HealthInfoSystem/pkg/httpx"
	"github.com/Killercavin/HealthInfoSystem/pkg/slogx"

	_ "github.com/Killercavin/HealthInfoSystem/api/his" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits configures the per-IP budgets applied by the router. All read
// routes share one budget and all write routes share another.
type RateLimits struct {
	Read  httpx.RateLimitConfig
	Write httpx.RateLimitConfig

	// TrustProxyHeaders keys clients by X-Forwarded-For / X-Real-IP. Enable
	// only behind a reverse proxy that sets these headers.
	TrustProxyHeaders bool
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	static       fs.FS
	limits       RateLimits

	store             store.Store
	ProgramService    *service.ProgramService
	ClientService     *service.ClientService
	EnrollmentService *service.EnrollmentService
}

// NewRouter creates a router. Services are wired by the caller before
// ApplyRoutes. A nil static filesystem disables the front end.
func NewRouter(buildVersion string, st store.Store, static fs.FS, limits RateLimits, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		static:       static,
		limits:       limits,
		store:        st,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	read := httpx.RateLimitByIP(r.limits.Read, r.limits.TrustProxyHeaders)
	write := httpx.RateLimitByIP(r.limits.Write, r.limits.TrustProxyHeaders)

	r.registerPrograms(read, write)
	r.registerClients(read, write)
	r.registerSystem(read)

	r.Mux.Handle("GET /swagger/", httpSwagger.Handler())

	if r.static != nil {
		r.Mux.Handle("GET /", StaticHandler(r.static))
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Health Information System API
//	@version		0.1.0
//	@description	REST API for managing health programs, registering clients and enrolling clients in programs.
//
//	@contact.name	HealthInfoSystem Maintainers
//	@contact.url	https://github.com/Killercavin/HealthInfoSystem
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerPrograms(read, write httpx.Middleware) {
	h := &ProgramsHandler{ProgramService: r.ProgramService}

	r.Mux.Handle("GET /api/programs", httpx.Chain(http.HandlerFunc(h.HandleList), read))
	r.Mux.Handle("POST /api/programs", httpx.Chain(http.HandlerFunc(h.HandleCreate), write))
	r.Mux.Handle("PUT /api/programs/{id}", httpx.Chain(http.HandlerFunc(h.HandleNotImplemented), write))
	r.Mux.Handle("DELETE /api/programs/{id}", httpx.Chain(http.HandlerFunc(h.HandleNotImplemented), write))
}

func (r *Router) registerClients(read, write httpx.Middleware) {
	h := &ClientsHandler{
		ClientService:     r.ClientService,
		EnrollmentService: r.EnrollmentService,
	}

	r.Mux.Handle("GET /api/clients", httpx.Chain(http.HandlerFunc(h.HandleList), read))
	r.Mux.Handle("GET /api/clients/search", httpx.Chain(http.HandlerFunc(h.HandleSearch), read))
	r.Mux.Handle("GET /api/clients/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), read))
	r.Mux.Handle("POST /api/clients", httpx.Chain(http.HandlerFunc(h.HandleCreate), write))
	r.Mux.Handle("POST /api/clients/{id}/enroll", httpx.Chain(http.HandlerFunc(h.HandleEnroll), write))
}

func (r *Router) registerSystem(read httpx.Middleware) {
	// Probes share the read budget.
	r.Mux.Handle("GET /livez", httpx.Chain(LivezHandler(r.startTime, r.buildVersion), read))
	r.Mux.Handle("GET /readyz", httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store), read))
}
