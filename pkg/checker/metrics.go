/*
Copyright © 2026 PSMPChecker Authors
SPDX-License-Identifier: Apache-2.0
*/
package checker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "psmp_check_run_duration_seconds",
			Help:    "Time taken by a complete diagnostic run",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
	)

	checkRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "psmp_check_run_total",
			Help: "Total number of diagnostic run attempts",
		},
		[]string{"status"}, // success or error
	)

	checkDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "psmp_check_duration_seconds",
			Help:    "Time taken by individual checks",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"check"}, // matrix, pkgdb, distro, services, openssh, sshd_config
	)
)
