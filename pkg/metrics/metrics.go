package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrega os instrumentos Prometheus da aplicação. Construído uma vez
// na inicialização e injetado nos serviços; nenhum registro global além do
// registrador padrão do promauto
type Metrics struct {
	SyncRuns         *prometheus.CounterVec
	SyncDuration     *prometheus.HistogramVec
	MonitoringJobs   *prometheus.CounterVec
	MonitoringJobDur prometheus.Histogram
	TokenRefreshes   *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		SyncRuns: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sync_runs_total",
			Help: "Total de sincronizações executadas, por provedor e status final",
		}, []string{"provider", "status"}),

		SyncDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sync_duration_seconds",
			Help:    "Duração das sincronizações em segundos, por provedor",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}, []string{"provider"}),

		MonitoringJobs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "monitoring_jobs_total",
			Help: "Total de jobs de monitoramento processados, por status final",
		}, []string{"status"}),

		MonitoringJobDur: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "monitoring_job_duration_seconds",
			Help:    "Duração da execução de um job de monitoramento em segundos",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),

		TokenRefreshes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "token_refreshes_total",
			Help: "Total de renovações de token OAuth, por provedor e resultado",
		}, []string{"provider", "result"}),
	}
}

// Handler expõe o endpoint /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
