// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// queueMetrics records per-outcome counters and per-call latencies for
// the import queue. A nil *queueMetrics disables all recording.
type queueMetrics struct {
	importedBlocks          *prometheus.CounterVec
	blockVerificationTime   prometheus.Histogram
	blockImportTime         prometheus.Histogram
	justificationImportTime prometheus.Histogram
}

// newQueueMetrics builds and registers the queue metrics. It returns
// nil when no registerer is given or when registration fails; a
// registration failure is logged and never aborts construction.
func newQueueMetrics(registerer prometheus.Registerer) *queueMetrics {
	if registerer == nil {
		return nil
	}

	m := &queueMetrics{
		importedBlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "substrate",
			Name:      "import_queue_processed_total",
			Help:      "how many blocks were processed by the import queue",
		}, []string{"result"}),
		blockVerificationTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "substrate",
			Name:      "block_verification_time",
			Help:      "time taken to verify a block",
		}),
		blockImportTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "substrate",
			Name:      "block_import_time",
			Help:      "time taken to import a block",
		}),
		justificationImportTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "substrate",
			Name:      "justification_import_time",
			Help:      "time taken to import a justification",
		}),
	}

	collectors := []prometheus.Collector{
		m.importedBlocks,
		m.blockVerificationTime,
		m.blockImportTime,
		m.justificationImportTime,
	}
	for _, collector := range collectors {
		err := registerer.Register(collector)
		if err != nil {
			logger.Warnf("failed to register import queue metrics: %s", err)
			return nil
		}
	}

	return m
}

func (m *queueMetrics) reportImport(result BlockImportResult) {
	label := "success"
	switch {
	case result.Err == nil:
	case errors.Is(result.Err, ErrCancelled):
		label = "cancelled"
	case errors.Is(result.Err, ErrIncompleteHeader):
		label = "incomplete_header"
	case errors.Is(result.Err, ErrVerificationFailed):
		label = "verification_failed"
	case errors.Is(result.Err, ErrBadBlock):
		label = "bad_block"
	case errors.Is(result.Err, ErrUnknownParent):
		label = "unknown_parent"
	case errors.Is(result.Err, ErrMissingState):
		label = "missing_state"
	default:
		label = "failed"
	}

	m.importedBlocks.WithLabelValues(label).Inc()
}
