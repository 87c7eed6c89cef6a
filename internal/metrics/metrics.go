// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus instruments of the service. All
// collectors are registered with the default registry, so serving
// promhttp.Handler is enough to expose them.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ConfigInfo is always 1; its labels describe the resolved configuration.
	ConfigInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "apiconf_config_info",
			Help: "Resolved configuration of the running service.",
		},
		[]string{"name", "slug", "version", "scheme", "prefix", "docs"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apiconf_http_requests_total",
			Help: "Cumulative number of handled HTTP requests.",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apiconf_http_request_duration_seconds",
			Help:    "Latency of handled HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(
		ConfigInfo,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}

// Info is the subset of a resolved configuration published by ConfigInfo.
type Info struct {
	Name    string
	Slug    string
	Version string
	Scheme  string
	Prefix  string
	Docs    bool
}

// SetConfigInfo replaces the published configuration labels with info.
func SetConfigInfo(info Info) {
	ConfigInfo.Reset()
	ConfigInfo.WithLabelValues(
		info.Name,
		info.Slug,
		info.Version,
		info.Scheme,
		info.Prefix,
		strconv.FormatBool(info.Docs),
	).Set(1)
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(seconds)
}
