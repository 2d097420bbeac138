package chat

import "github.com/prometheus/client_golang/prometheus"

var (
	ConnectedClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chat_connected_clients",
		Help: "Number of currently connected clients",
	})

	RejectedConnections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chat_rejected_connections_total",
		Help: "Connections rejected because the server was at capacity",
	})

	MessagesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_messages_total",
		Help: "Total input lines processed by classification",
	}, []string{"type"})

	BroadcastRecipients = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chat_broadcast_recipients",
		Help:    "Recipients per room broadcast",
		Buckets: prometheus.LinearBuckets(0, 5, 10),
	})
)

func init() {
	prometheus.MustRegister(ConnectedClients)
	prometheus.MustRegister(RejectedConnections)
	prometheus.MustRegister(MessagesTotal)
	prometheus.MustRegister(BroadcastRecipients)
}
