package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmitsTotal counts transfer form submits by direction and outcome
	SubmitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_console_submits_total",
			Help: "Total number of transfer form submits",
		},
		[]string{"direction", "outcome"},
	)

	// PreconditionFailures counts failed feasibility preconditions by check name
	PreconditionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_console_precondition_failures_total",
			Help: "Total number of failed transfer preconditions",
		},
		[]string{"direction", "check"},
	)

	// PlannerDuration tracks feasibility check latency
	PlannerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_console_planner_duration_seconds",
			Help:    "Feasibility check duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"direction"},
	)

	// OpenSessions tracks the number of open transfer form sessions
	OpenSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_console_open_sessions",
			Help: "Number of open transfer form sessions",
		},
	)

	// OperatingMode is 1 when a bridge direction operates normally, 0 when halted
	OperatingMode = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_console_operating_mode",
			Help: "Bridge operating mode by direction (1 normal, 0 halted)",
		},
		[]string{"direction"},
	)

	// LatencySeconds tracks light client latency by direction
	LatencySeconds = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_console_latency_seconds",
			Help: "Light client latency in seconds by direction",
		},
		[]string{"direction"},
	)

	// BlockLatency tracks light client latency in blocks by direction
	BlockLatency = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_console_block_latency",
			Help: "Light client latency in blocks by direction",
		},
		[]string{"direction"},
	)

	// ChannelBacklog tracks undelivered messages per channel and direction
	ChannelBacklog = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_console_channel_backlog",
			Help: "Outbound minus inbound nonce per channel and direction",
		},
		[]string{"channel", "direction"},
	)

	// AccountBalance tracks relayer and sovereign account balances in whole tokens
	AccountBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_console_account_balance",
			Help: "Monitored account balance by name and chain type",
		},
		[]string{"name", "type"},
	)

	// StatusFetches counts status refreshes by result
	StatusFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_console_status_fetches_total",
			Help: "Total number of bridge status refreshes",
		},
		[]string{"result"},
	)

	// LastStatusUpdate is the unix time of the last successful status refresh
	LastStatusUpdate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_console_last_status_update_timestamp",
			Help: "Unix time of the last successful status refresh",
		},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_console_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
