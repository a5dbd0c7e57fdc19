// Package metrics defines the custom Prometheus metrics of the marketplace
// API. Request-level metrics come from echoprometheus; the collectors below
// cover business events and the activity dispatcher.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "skattajobs"

// ── Auth ──────────────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered accounts, by role.",
	},
	[]string{"role"},
)

// ── Bookings ──────────────────────────────────────────────────────────────────

// BookingsCreatedTotal counts new bookings.
// Label:
//   - payment_method: "airtel_money", "moov_money" or "cash"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by payment method.",
	},
	[]string{"payment_method"},
)

// BookingStatusUpdatesTotal counts status updates by resulting status.
// Label:
//   - status: the status requested by the caller
var BookingStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_updates_total",
		Help:      "Total number of accepted booking status updates, by status.",
	},
	[]string{"status"},
)

// ── Uploads ───────────────────────────────────────────────────────────────────

// UploadsTotal counts stored files by upload type.
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of uploaded files, by type.",
	},
	[]string{"type"},
)

// ── Activity dispatcher ───────────────────────────────────────────────────────

// ActivityEntriesTotal counts audit entries handled by the dispatcher.
// Label:
//   - result: "stored", "dropped" (queue full) or "failed" (write error)
var ActivityEntriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_entries_total",
		Help:      "Total number of activity log entries, by outcome.",
	},
	[]string{"result"},
)

// ActivityQueueDepth tracks the number of entries waiting in each worker channel.
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ActivityWriteDuration measures how long persisting one entry takes.
var ActivityWriteDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "activity_write_duration_seconds",
		Help:      "Duration of a single activity log write.",
		Buckets:   prometheus.DefBuckets,
	},
)
