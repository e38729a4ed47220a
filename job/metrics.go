package job

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeInactive = "inactive"
	outcomeMissing  = "missing"
	outcomeError    = "error"
)

var (
	refreshRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "suprss",
		Subsystem: "scheduler",
		Name:      "refresh_runs_total",
		Help:      "Scheduled refresh runs by outcome.",
	}, []string{"outcome"})

	articlesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "suprss",
		Subsystem: "scheduler",
		Name:      "articles_created_total",
		Help:      "Articles inserted by scheduled refresh runs.",
	})
)
