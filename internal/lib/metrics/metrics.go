// Package metrics объявляет метрики Prometheus приложения.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequests количество обработанных HTTP-запросов.
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_http_requests_total",
		Help: "Number of HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration длительность обработки HTTP-запросов.
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gym_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// MembershipsCreated количество оформленных абонементов по длительности.
	MembershipsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_memberships_created_total",
		Help: "Number of memberships created at member registration.",
	}, []string{"duration"})

	// MembershipRenewals попытки продления по результату.
	MembershipRenewals = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_membership_renewals_total",
		Help: "Membership renewal attempts by result.",
	}, []string{"result"})

	// NotificationsPublished опубликованные уведомления об окончании абонемента.
	NotificationsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_notifications_published_total",
		Help: "Expiring membership notifications published to the broker.",
	}, []string{"result"})

	// EmailsSent письма, отправленные сервисом уведомлений.
	EmailsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gym_emails_sent_total",
		Help: "Reminder e-mails by result.",
	}, []string{"result"})
)

// Результаты для меток result.
const (
	ResultOK          = "ok"
	ResultStillActive = "still_active"
	ResultNotFound    = "not_found"
	ResultError       = "error"
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPDuration,
		MembershipsCreated,
		MembershipRenewals,
		NotificationsPublished,
		EmailsSent,
	)
}
