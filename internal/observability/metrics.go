package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ShopifyRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopify_requests_total",
			Help: "Total of calls to the Shopify admin API by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	FallbackResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "season_fallback_responses_total",
			Help: "Season lookups answered from the static fallback table",
		},
		[]string{"known_season"},
	)

	NamesGeneratedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "names_generated_total",
			Help: "Total of candidate names handed out by the generator",
		},
	)
)

func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{ShopifyRequestsTotal, FallbackResponsesTotal, NamesGeneratedTotal} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func Start(port string) {
	if err := Register(prometheus.DefaultRegisterer); err != nil {
		log.WithError(err).Fatal("could not register metrics")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.WithError(err).Error("metrics server stopped")
		}
	}()
}
