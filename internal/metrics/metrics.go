package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Broadcast Metrics
var (
	BroadcastsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBroadcastsTotal,
			Help: HelpTextBroadcastsTotal,
		},
		[]string{LabelMode, LabelOutcome},
	)

	BroadcastMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBroadcastMessagesTotal,
			Help: HelpTextBroadcastMessagesTotal,
		},
		[]string{LabelResult},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameQueueDepth,
			Help: HelpTextQueueDepth,
		},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)
)

// Credit Metrics
var (
	CreditsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCreditsGranted,
			Help: HelpTextCreditsGranted,
		},
		[]string{LabelSource},
	)

	CreditsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsSpent,
			Help: HelpTextCreditsSpent,
		},
	)

	CreditsRefunded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCreditsRefunded,
			Help: HelpTextCreditsRefunded,
		},
	)

	ProBotTransfersProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProBotTransfersProcessed,
			Help: HelpTextProBotTransfersProcessed,
		},
	)
)
