package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/pkg/httpx"
	"github.com/aussiebroadwan/riskconsole/pkg/jwtx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/aussiebroadwan/riskconsole/api/mockapi" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	prefix       string
	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	registry     *prometheus.Registry
	metrics      *httpx.HTTPMetrics

	// RateLimits are read by ApplyRoutes. Defaults to DefaultRateLimits.
	RateLimits httpx.RateLimits

	store             store.Store
	CookieSecure      bool
	TokenService      *service.TokenService
	UserService       *service.UserService
	CatalogService    *service.CatalogService
	NameListService   *service.NameListService
	ListDetailService *service.ListDetailService
	ModerationService *service.ModerationService
	RiskLogService    *service.RiskLogService
}

// NewRouter mounts the console API under prefix ("/api/v1"). Health checks, metrics
// and the Swagger UI stay at the root.
func NewRouter(
	prefix string,
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	registry *prometheus.Registry,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		prefix:       prefix,
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		registry:     registry,
		metrics:      httpx.NewHTTPMetrics(registry, "mockapi"),
		RateLimits:   httpx.DefaultRateLimits(),
	}

	// The metrics middleware reads the matched pattern, which ServeMux sets
	// on the request it is handed, so it has to sit right above the mux.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.Middleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerApps()
	r.registerChannels()
	r.registerNameLists()
	r.registerListDetails()
	r.registerModeration()
	r.registerRiskLogs()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title						Risk Console Development API
//	@version					0.1.0
//	@description				Local stand-in for the moderation backend the risk console talks to.
//	@description				Most endpoints answer an envelope {code, message, requestId, data}; name list and list entry reads answer bare JSON.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/riskconsole
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				EdDSA access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) route(method, path string) string {
	return method + " " + r.prefix + path
}

// limit builds a fresh limiter for one route. Rejections are counted per
// profile.
func (r *Router) limit(profile string, l httpx.RateLimit, key httpx.KeyExtractor) httpx.Middleware {
	return httpx.RateLimitMiddleware(l, key,
		httpx.WithRejections(r.metrics.RateLimited.WithLabelValues(profile)),
	)
}

// read guards an authenticated read.
func (r *Router) read(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		r.limit("lenient", r.RateLimits.Lenient, httpx.UserOrIPKeyExtractor),
	)
}

// write guards a catalog mutation: admins only.
func (r *Router) write(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(domain.RoleAdmin),
		r.limit("moderate", r.RateLimits.Moderate, httpx.UserOrIPKeyExtractor),
	)
}

// loginKey limits credential attempts per IP and identity.
var loginKey = httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.JSONFieldKeyExtractor("identity"))

func (r *Router) registerAuth() {
	h := &AuthHandler{
		UserService:  r.UserService,
		TokenService: r.TokenService,
		CookieSecure: r.CookieSecure,
	}

	// Credentials endpoints are limited per IP and identity to slow brute force.
	r.Mux.Handle(r.route("POST", "/auth/login"),
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			r.limit("strict", r.RateLimits.Strict, loginKey),
		),
	)
	r.Mux.Handle(r.route("POST", "/auth/register"),
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			r.limit("strict", r.RateLimits.Strict, loginKey),
		),
	)
	r.Mux.Handle(r.route("POST", "/auth/refresh"),
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			r.limit("moderate", r.RateLimits.Moderate, httpx.IPKeyExtractor),
		),
	)
	r.Mux.Handle(r.route("POST", "/auth/logout"),
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			r.limit("moderate", r.RateLimits.Moderate, httpx.IPKeyExtractor),
		),
	)
	r.Mux.Handle(r.route("GET", "/auth/me"), r.read(h.HandleMe))
}

func (r *Router) registerApps() {
	h := &AppsHandler{CatalogService: r.CatalogService}

	r.Mux.Handle(r.route("GET", "/apps"), r.read(h.HandleList))
	r.Mux.Handle(r.route("GET", "/apps/{app_id}"), r.read(h.HandleGet))
	r.Mux.Handle(r.route("POST", "/apps"), r.write(h.HandleCreate))
	r.Mux.Handle(r.route("PUT", "/apps/{app_id}"), r.write(h.HandleUpdate))
	r.Mux.Handle(r.route("DELETE", "/apps/{app_id}"), r.write(h.HandleDelete))
}

func (r *Router) registerChannels() {
	h := &ChannelsHandler{CatalogService: r.CatalogService}

	r.Mux.Handle(r.route("GET", "/channels"), r.read(h.HandleList))
	r.Mux.Handle(r.route("GET", "/channels/{id}"), r.read(h.HandleGet))
	r.Mux.Handle(r.route("POST", "/channels"), r.write(h.HandleCreate))
	r.Mux.Handle(r.route("PUT", "/channels/{id}"), r.write(h.HandleUpdate))
	r.Mux.Handle(r.route("DELETE", "/channels/{id}"), r.write(h.HandleDelete))
}

func (r *Router) registerNameLists() {
	h := &NameListsHandler{NameListService: r.NameListService}

	r.Mux.Handle(r.route("GET", "/name-lists"), r.read(h.HandleList))
	r.Mux.Handle(r.route("GET", "/name-lists/{lid}"), r.read(h.HandleGet))
	r.Mux.Handle(r.route("POST", "/name-lists"), r.write(h.HandleCreate))
	r.Mux.Handle(r.route("PUT", "/name-lists/{lid}"), r.write(h.HandleUpdate))
	r.Mux.Handle(r.route("DELETE", "/name-lists/{lid}"), r.write(h.HandleDelete))
	r.Mux.Handle(r.route("PATCH", "/name-lists/{lid}/status"), r.write(h.HandleStatus))
}

func (r *Router) registerListDetails() {
	h := &ListDetailsHandler{ListDetailService: r.ListDetailService}

	r.Mux.Handle(r.route("GET", "/list-details/search"), r.read(h.HandleSearch))
	r.Mux.Handle(r.route("GET", "/list-details/{id}"), r.read(h.HandleGet))
	r.Mux.Handle(r.route("POST", "/list-details"), r.write(h.HandleAdd))
	r.Mux.Handle(r.route("POST", "/list-details/batch"), r.write(h.HandleAddBatch))
	r.Mux.Handle(r.route("PUT", "/list-details/{id}"), r.write(h.HandleUpdate))
	r.Mux.Handle(r.route("DELETE", "/list-details/{id}"), r.write(h.HandleDelete))
	r.Mux.Handle(r.route("DELETE", "/list-details/batch"), r.write(h.HandleDeleteBatch))
	r.Mux.Handle(r.route("DELETE", "/list-details/by-text"), r.write(h.HandleDeleteByText))
}

func (r *Router) registerModeration() {
	// Authorized by the app access key in the body, limited per caller IP.
	r.Mux.Handle(r.route("POST", "/moderation/text"),
		httpx.Chain(&ModerationHandler{ModerationService: r.ModerationService},
			r.limit("public", r.RateLimits.Public, httpx.IPKeyExtractor),
		),
	)
}

func (r *Router) registerRiskLogs() {
	h := &RiskLogsHandler{RiskLogService: r.RiskLogService}
	r.Mux.Handle(r.route("GET", "/risk-logs"), r.read(h.ServeHTTP))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			r.limit("lenient", r.RateLimits.Lenient, httpx.IPKeyExtractor),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			r.limit("lenient", r.RateLimits.Lenient, httpx.IPKeyExtractor),
		),
	)
	r.Mux.Handle("GET /metrics", httpx.MetricsHandler(r.registry))
}
