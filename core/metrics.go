package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricOutcomeSuccess  = "success"
	metricOutcomeFailure  = "failure"
	metricOutcomeNotFound = "not_found"
	metricOutcomeError    = "error"

	metricMethodPassword = "password"
	metricMethodOAuth2   = "oauth2"
)

var (
	metricAuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmark_auth_attempts_total",
			Help: "Authentication attempts by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	metricMovieLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelmark_movie_lookups_total",
			Help: "External movie API lookups by outcome.",
		},
		[]string{"outcome"},
	)
)
