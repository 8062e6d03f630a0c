// Package metrics defines the Prometheus collectors exposed on /metrics.
// All collectors register with the default registry at init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// ApplicationsSubmittedTotal counts applications persisted by Apply.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted.",
	},
)

// ApplicationsDuplicateTotal counts Apply calls rejected as duplicates.
// Label:
//   - source: "precheck" or "constraint" (unique index fired on insert)
var ApplicationsDuplicateTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_duplicate_total",
		Help:      "Total number of duplicate applications rejected.",
	},
	[]string{"source"},
)

// ApplicationStatusUpdatesTotal counts status changes by resulting status.
var ApplicationStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_status_updates_total",
		Help:      "Total number of application status updates, by new status.",
	},
	[]string{"status"},
)

// MatchRequestsTotal counts skill-match requests.
// Label:
//   - outcome: "matched", "no_matches" or "no_skills"
var MatchRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_requests_total",
		Help:      "Total number of job match requests, by outcome.",
	},
	[]string{"outcome"},
)

// JobsCreatedTotal counts job postings by job type.
var JobsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of jobs created, by job type.",
	},
	[]string{"job_type"},
)

// UsersRegisteredTotal counts self-service sign-ups by role.
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of registered accounts, by role.",
	},
	[]string{"role"},
)

// HTTPRequestDuration measures request latency.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
// Label:
//   - prefix: the limiter's key prefix, e.g. "rl:ip:"
var RateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by rate limiting.",
	},
	[]string{"prefix"},
)
