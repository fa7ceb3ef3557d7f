package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "voice_chat_skill"

var (
	// Skill dispatch
	SkillRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Skill requests by handler and request type",
	}, []string{"handler", "request_type"})

	SkillFaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "faults_total",
		Help:      "Handler faults answered with the apology response",
	}, []string{"handler"})

	SkillRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rejected_total",
		Help:      "Skill requests rejected before dispatch",
	}, []string{"reason"})

	// Chat completion
	LLMLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "llm_latency_seconds",
		Help:      "Chat completion latency across the provider chain",
		Buckets:   []float64{.25, .5, 1, 2, 3, 4, 5, 6, 8},
	}, []string{"provider", "status"})

	LLMCircuitOpen = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "llm_circuit_open",
		Help:      "1 while the provider circuit breaker is open",
	}, []string{"provider"})
)

// ObserveDispatch counts one handled request.
func ObserveDispatch(handler, requestType string) {
	SkillRequestsTotal.WithLabelValues(handler, requestType).Inc()
}

func ObserveFault(handler string) {
	SkillFaultsTotal.WithLabelValues(handler).Inc()
}

func ObserveRejected(reason string) {
	SkillRejectedTotal.WithLabelValues(reason).Inc()
}

// ObserveLLM records one chat completion. provider is "none" when every provider failed.
func ObserveLLM(provider string, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	if provider == "" {
		provider = "none"
	}
	LLMLatency.WithLabelValues(provider, status).Observe(d.Seconds())
}

// SetCircuitState tracks breaker transitions. Half-open counts as closed.
func SetCircuitState(provider, state string) {
	v := 0.0
	if state == "open" {
		v = 1
	}
	LLMCircuitOpen.WithLabelValues(provider).Set(v)
}
