package handler

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Check reports whether one dependency is usable.
type Check func(ctx context.Context) error

// NamedCheck pairs a dependency name with its readiness check.
type NamedCheck struct {
	Name  string
	Check Check
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck adapts a Pinger into a Check.
func PingCheck(p Pinger) Check {
	return p.Ping
}

// ClosedChecker is satisfied by *amqp091.Connection.
type ClosedChecker interface {
	IsClosed() bool
}

// ConnectionCheck fails once the connection has been closed.
func ConnectionCheck(c ClosedChecker) Check {
	return func(context.Context) error {
		if c.IsClosed() {
			return errors.New("connection closed")
		}
		return nil
	}
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	checks  []NamedCheck
	timeout time.Duration
}

// NewHealthHandler creates a new HealthHandler. Checks run in order on every readiness probe.
func NewHealthHandler(checks ...NamedCheck) *HealthHandler {
	return &HealthHandler{
		checks:  checks,
		timeout: 5 * time.Second,
	}
}

// Liveness returns 200 if the process is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 once every dependency check passes.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	status := map[string]string{"status": "ready"}
	for _, c := range h.checks {
		if err := c.Check(ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, c.Name+" unhealthy", err.Error())
			return
		}
		status[c.Name] = "ok"
	}

	writeJSON(w, http.StatusOK, status)
}
