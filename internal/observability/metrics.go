package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gestor_sucursal"

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Peticiones HTTP atendidas por ruta y estado.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latencia de las peticiones HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	activityMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "activities",
		Name:      "mutations_total",
		Help:      "Cambios aplicados a la agenda por tipo de evento.",
	}, []string{"event_type"})

	lastCompletedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "activities",
		Name:      "last_completed_timestamp_seconds",
		Help:      "Hora (según el reloj del sistema) de la última actividad completada.",
	})

	publishFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "publish_failures_total",
		Help:      "Eventos de actividad que no se pudieron publicar.",
	}, []string{"event_type"})

	loginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Intentos de login por resultado.",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(httpRequests, httpDuration, activityMutations, lastCompletedGauge, publishFailures, loginAttempts)
}

// RecordHTTPRequest registra una petición atendida.
func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordActivityMutation cuenta un cambio de agenda.
func RecordActivityMutation(eventType string) {
	activityMutations.WithLabelValues(eventType).Inc()
}

// RecordActivityCompleted actualiza la marca de la última actividad completada.
func RecordActivityCompleted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastCompletedGauge.Set(float64(ts.Unix()))
}

// RecordPublishFailure cuenta un evento perdido.
func RecordPublishFailure(eventType string) {
	publishFailures.WithLabelValues(eventType).Inc()
}

// RecordLogin cuenta un intento de login ("ok", "invalid", "error").
func RecordLogin(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}
