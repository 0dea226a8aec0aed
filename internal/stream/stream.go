package stream

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vk/gidgo/internal/ctxlog"
	"github.com/vk/gidgo/internal/stategraph"
)

// Handler serves the live feed and its metrics.
type Handler struct {
	newDetector func() stategraph.Detector
	upgrader    websocket.Upgrader
	registry    *prometheus.Registry
	updates     *prometheus.CounterVec
	transitions *prometheus.CounterVec
}

// New returns a handler that runs one fresh detector per connection.
func New(newDetector func() stategraph.Detector) *Handler {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Handler{
		newDetector: newDetector,
		registry:    registry,
		updates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gid_updates_total",
			Help: "Update records applied, by operation.",
		}, []string{"op"}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gid_transitions_total",
			Help: "Vertex status transitions, by resulting status.",
		}, []string{"to"}),
	}
}

// Routes returns the HTTP mux with /feed and /metrics.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed", h.handleFeed)
	mux.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	return mux
}

// Transition reports one vertex changing class.
type Transition struct {
	Vertex int    `json:"vertex"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// FeedResponse answers one update frame.
type FeedResponse struct {
	Applied     string         `json:"applied"`
	Transitions []Transition   `json:"transitions"`
	Counts      map[string]int `json:"counts"`
	Error       string         `json:"error,omitempty"`
}

func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.FromContext(r.Context())
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("feed upgrade failed", "err", err)
		return
	}
	defer conn.Close()
	logger.Info("feed connected", "remote", conn.RemoteAddr())

	// The detector is a sequential mutator; this read loop is its only
	// caller for the lifetime of the connection.
	d := h.newDetector()
	prev := make(map[int]stategraph.Status)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			logger.Info("feed disconnected", "remote", conn.RemoteAddr(), "err", err)
			return
		}
		var upd stategraph.Update
		if err := json.Unmarshal(data, &upd); err != nil {
			if writeErr := conn.WriteJSON(FeedResponse{Error: err.Error()}); writeErr != nil {
				return
			}
			continue
		}
		stategraph.Apply(d, upd)
		h.updates.WithLabelValues(opLabel(upd.Op)).Inc()
		resp := h.diff(d, prev, upd)
		if err := conn.WriteJSON(resp); err != nil {
			logger.Info("feed write failed", "remote", conn.RemoteAddr(), "err", err)
			return
		}
	}
}

// diff scans the detector for status changes since the previous frame and
// refreshes the prev map in place.
func (h *Handler) diff(d stategraph.Detector, prev map[int]stategraph.Status, upd stategraph.Update) FeedResponse {
	resp := FeedResponse{
		Applied:     upd.String(),
		Transitions: []Transition{},
		Counts:      make(map[string]int, 4),
	}
	for _, st := range []stategraph.Status{stategraph.Live, stategraph.Dead, stategraph.Unknown, stategraph.Open} {
		resp.Counts[st.String()] = 0
	}
	for _, v := range d.States() {
		now := stategraph.StatusOrOpen(d, v)
		resp.Counts[now.String()]++
		before, seen := prev[v]
		if !seen {
			before = stategraph.Open
		}
		if now != before || !seen {
			if now != before {
				resp.Transitions = append(resp.Transitions, Transition{Vertex: v, From: before.String(), To: now.String()})
				h.transitions.WithLabelValues(now.String()).Inc()
			}
			prev[v] = now
		}
	}
	return resp
}

func opLabel(op stategraph.Op) string {
	switch op {
	case stategraph.OpAdd:
		return "add"
	case stategraph.OpClose:
		return "close"
	case stategraph.OpLive:
		return "live"
	default:
		return "invalid"
	}
}
