package services

import (
	"context"
	"sync"
	"time"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
	HealthStatusError    = "error"

	ServiceHealthy   = "healthy"
	ServiceUnhealthy = "unhealthy"

	healthProbeTimeout = 3 * time.Second
)

// ServiceStatus reports one dependency probe
type ServiceStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthReport aggregates all dependency probes. Status is "ok" only when
// every dependency answered, "degraded" when some failed and "error" when
// every probe failed.
type HealthReport struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Services  map[string]ServiceStatus `json:"services"`
}

// HealthService probes the database, search cluster and cache in parallel.
// The web service itself is always reported healthy; reaching this code means
// the HTTP layer is serving.
type HealthService struct {
	probes map[string]Pinger
}

// NewHealthService creates a new health service over the named probes
func NewHealthService(db, search, cache Pinger) HealthServiceInterface {
	return &HealthService{
		probes: map[string]Pinger{
			"postgres":      db,
			"elasticsearch": search,
			"redis":         cache,
		},
	}
}

// Check pings every dependency concurrently, each under its own timeout, and
// aggregates the results. It always returns a report, never an error.
func (s *HealthService) Check(ctx context.Context) *HealthReport {
	report := &HealthReport{
		Timestamp: time.Now().UTC(),
		Services:  make(map[string]ServiceStatus, len(s.probes)+1),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	failures := 0

	for name, probe := range s.probes {
		wg.Add(1)
		go func(name string, probe Pinger) {
			defer wg.Done()

			probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
			defer cancel()

			start := time.Now()
			err := probe.Ping(probeCtx)
			status := ServiceStatus{
				Status:  ServiceHealthy,
				Latency: time.Since(start).String(),
			}
			if err != nil {
				status.Status = ServiceUnhealthy
				status.Error = err.Error()
			}

			mu.Lock()
			report.Services[name] = status
			if err != nil {
				failures++
			}
			mu.Unlock()
		}(name, probe)
	}

	wg.Wait()

	report.Services["web"] = ServiceStatus{Status: ServiceHealthy}

	switch {
	case failures == 0:
		report.Status = HealthStatusOK
	case failures < len(s.probes):
		report.Status = HealthStatusDegraded
	default:
		report.Status = HealthStatusError
	}

	return report
}
