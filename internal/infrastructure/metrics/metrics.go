package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/savingsgl/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Event processing metrics
	EventsProcessed    *prometheus.CounterVec
	EventsDuplicate    prometheus.Counter
	ProcessingDuration prometheus.Histogram

	// Journal metrics
	PostingGroups  *prometheus.CounterVec
	JournalEntries *prometheus.CounterVec
	PostingErrors  *prometheus.CounterVec
	PostedAmount   *prometheus.HistogramVec

	// Charge metrics
	FeesComputed *prometheus.CounterVec
	FeesCapped   prometheus.Counter

	// Fee split metrics
	FeeSplitsApplied prometheus.Counter
	FeeSplitDetails  prometheus.Counter
	FeeSplitAmount   prometheus.Histogram
	FeeSplitErrors   *prometheus.CounterVec

	// Outbox metrics
	OutboxPublished prometheus.Counter
	OutboxFailures  prometheus.Counter

	// Ops HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates and registers all metrics with the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates and registers all metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EventsProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savingsgl_events_processed_total",
				Help: "Transaction events processed by kind and outcome",
			},
			[]string{"kind", "status"},
		),
		EventsDuplicate: factory.NewCounter(prometheus.CounterOpts{
			Name: "savingsgl_events_duplicate_total",
			Help: "Transaction events skipped as duplicate deliveries",
		}),
		ProcessingDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "savingsgl_event_processing_duration_seconds",
			Help:    "Duration of one transaction event unit of work",
			Buckets: prometheus.DefBuckets,
		}),

		PostingGroups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savingsgl_posting_groups_total",
				Help: "Posting groups committed",
			},
			[]string{"reversal"},
		),
		JournalEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savingsgl_journal_entries_total",
				Help: "Journal entries written by side",
			},
			[]string{"side"},
		),
		PostingErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savingsgl_posting_errors_total",
				Help: "Posting groups rejected by reason",
			},
			[]string{"reason"},
		),
		PostedAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "savingsgl_posted_amount",
				Help:    "Debit total of committed posting groups",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
			},
			[]string{"currency"},
		),

		FeesComputed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savingsgl_fees_computed_total",
				Help: "Charge fee computations by calculation kind",
			},
			[]string{"calculation"},
		),
		FeesCapped: factory.NewCounter(prometheus.CounterOpts{
			Name: "savingsgl_fees_capped_total",
			Help: "Percentage fees clamped to a min or max cap",
		}),

		FeeSplitsApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "savingsgl_fee_splits_applied_total",
			Help: "Fee split audits written",
		}),
		FeeSplitDetails: factory.NewCounter(prometheus.CounterOpts{
			Name: "savingsgl_fee_split_details_total",
			Help: "Individual fund splits posted",
		}),
		FeeSplitAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "savingsgl_fee_split_amount",
			Help:    "Total fee amount distributed per audit",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		}),
		FeeSplitErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savingsgl_fee_split_errors_total",
				Help: "Fee split applications rejected by reason",
			},
			[]string{"reason"},
		),

		OutboxPublished: factory.NewCounter(prometheus.CounterOpts{
			Name: "savingsgl_outbox_published_total",
			Help: "Outbox events relayed to the broker",
		}),
		OutboxFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "savingsgl_outbox_failures_total",
			Help: "Outbox events that failed to publish",
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "savingsgl_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "savingsgl_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// ErrorReason maps an error to a low-cardinality label value.
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrUnbalancedPosting):
		return "unbalanced"
	case errors.Is(err, domain.ErrSplitOverAllocation):
		return "over_allocation"
	case errors.Is(err, domain.ErrMissingAccountMapping):
		return "missing_mapping"
	case errors.Is(err, domain.ErrDuplicateGroup):
		return "duplicate_group"
	case errors.Is(err, domain.ErrEmptyGroupID),
		errors.Is(err, domain.ErrMixedGroup),
		errors.Is(err, domain.ErrMissingSide):
		return "malformed_group"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
