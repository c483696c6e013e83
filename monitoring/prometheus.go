package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"starchain/logx"
)

type SubmissionRejectedReason string

var (
	SubmissionExpiredChallenge SubmissionRejectedReason = "expired_challenge"
	SubmissionInvalidSignature SubmissionRejectedReason = "invalid_signature"
	SubmissionAppendFailure    SubmissionRejectedReason = "append_failure"
	SubmissionRejectedUnknown  SubmissionRejectedReason = "other"
)

type registryPromMetrics struct {
	nodeUpUnixSeconds       prometheus.Gauge
	chainHeight             prometheus.Gauge
	appendedBlockCount      prometheus.Counter
	rejectedSubmissionCount *prometheus.CounterVec
	issuedChallengeCount    prometheus.Counter
	validationRunCount      prometheus.Counter
	violationCount          prometheus.Counter
	panicCount              prometheus.Counter
}

func newRegistryPromMetrics() *registryPromMetrics {
	return &registryPromMetrics{
		nodeUpUnixSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "starchain_up_timestamp_unix_seconds",
				Help: "Unix timestamp at which the registry process came up",
			},
		),
		chainHeight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "starchain_chain_height",
				Help: "The current chain height (position of the last block)",
			},
		),
		appendedBlockCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starchain_appended_block_count",
				Help: "The total number of blocks sealed and appended",
			},
		),
		rejectedSubmissionCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "starchain_rejected_submission_count",
				Help: "The total number of rejected star submissions",
			},
			[]string{"reason"},
		),
		issuedChallengeCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starchain_issued_challenge_count",
				Help: "The total number of ownership challenges issued",
			},
		),
		validationRunCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starchain_validation_run_count",
				Help: "The total number of full chain validation walks",
			},
		),
		violationCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starchain_violation_count",
				Help: "The total number of structural violations reported by validation",
			},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "starchain_panic_count",
				Help: "The total number of recovered panics",
			},
		),
	}
}

var registryMetrics = newRegistryPromMetrics()

// InitMetrics marks the process start time; collectors are registered at
// package init through promauto.
func InitMetrics() {
	registryMetrics.nodeUpUnixSeconds.SetToCurrentTime()
}

func RegisterMetrics(mux *http.ServeMux) {
	logx.Info("MONITORING", "Registering prometheus metrics")
	mux.Handle("/metrics", promhttp.Handler())
}

func SetChainHeight(height int64) {
	registryMetrics.chainHeight.Set(float64(height))
}

func IncreaseAppendedBlockCount() {
	registryMetrics.appendedBlockCount.Inc()
}

func RecordRejectedSubmission(reason SubmissionRejectedReason) {
	registryMetrics.rejectedSubmissionCount.With(prometheus.Labels{
		"reason": string(reason),
	}).Inc()
}

func IncreaseIssuedChallengeCount() {
	registryMetrics.issuedChallengeCount.Inc()
}

func IncreaseValidationRunCount() {
	registryMetrics.validationRunCount.Inc()
}

func RecordViolations(count int) {
	registryMetrics.violationCount.Add(float64(count))
}

func IncreasePanicCount() {
	registryMetrics.panicCount.Inc()
}
