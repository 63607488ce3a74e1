package redis

import (
	"context"
	"strconv"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	// StatusUp indicates the service is healthy and running
	StatusUp HealthStatus = "UP"
	// StatusDown indicates the service is not healthy or not running
	StatusDown HealthStatus = "DOWN"
)

// RedisHealthCheck represents the health check response for Redis
type RedisHealthCheck struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthCheck pings the server and reports pool statistics
func (c *Client) HealthCheck(ctx context.Context) RedisHealthCheck {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	start := time.Now()
	err := c.Ping(ctx)
	stats := c.rdb.PoolStats()

	details := map[string]string{
		"address":     c.config.Addr(),
		"database":    strconv.Itoa(c.config.Database),
		"total_conns": strconv.FormatUint(uint64(stats.TotalConns), 10),
		"idle_conns":  strconv.FormatUint(uint64(stats.IdleConns), 10),
		"latency":     time.Since(start).String(),
	}

	if err != nil {
		details["error"] = err.Error()
		return RedisHealthCheck{Status: StatusDown, Details: details}
	}
	return RedisHealthCheck{Status: StatusUp, Details: details}
}
