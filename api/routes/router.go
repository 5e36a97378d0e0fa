package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itemstore/itemstore-backend/api/controllers"
	"github.com/itemstore/itemstore-backend/api/middleware"
	itemsvc "github.com/itemstore/itemstore-backend/internal/items"
	"github.com/itemstore/itemstore-backend/pkg/config"
	"github.com/itemstore/itemstore-backend/pkg/logger"
	"github.com/itemstore/itemstore-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	promRegistry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	itemService itemsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Get("/", controllers.Root(cfg))
	r.Get("/health", controllers.Health(cfg))
	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/items", func(r chi.Router) {
		r.Get("/", controllers.ListItems(itemService, logg))
		r.Post("/", controllers.CreateItem(itemService, logg))
		r.Route("/{itemID}", func(r chi.Router) {
			r.Get("/", controllers.GetItem(itemService, logg))
			r.Put("/", controllers.UpdateItem(itemService, logg))
			r.Delete("/", controllers.DeleteItem(itemService, logg))
		})
	})

	return r
}
