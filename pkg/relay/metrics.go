package relay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "screenbeam",
		Subsystem: "relay",
		Name:      "connections_active",
		Help:      "Number of live websocket connections.",
	})
	metricRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "screenbeam",
		Subsystem: "relay",
		Name:      "rooms_active",
		Help:      "Number of rooms with a live host.",
	})
	metricEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "screenbeam",
		Subsystem: "relay",
		Name:      "events_total",
		Help:      "Inbound events by packet type.",
	}, []string{"type"})
	metricSignalsBuffered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "screenbeam",
		Subsystem: "relay",
		Name:      "signals_buffered_total",
		Help:      "Signals parked in the mailbox for a later recipient.",
	})
	metricSignalsReplayed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "screenbeam",
		Subsystem: "relay",
		Name:      "signals_replayed_total",
		Help:      "Mailbox signals delivered to a joining viewer.",
	})
	metricDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "screenbeam",
		Subsystem: "relay",
		Name:      "events_dropped_total",
		Help:      "Events dropped by reason (unauthorized, stale, duplicate).",
	}, []string{"reason"})
)
