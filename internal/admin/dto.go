// AngelaMos | 2026
// dto.go

package admin

import (
	"database/sql"
	"runtime"

	"github.com/redis/go-redis/v9"
)

type SystemStatsResponse struct {
	Storage  string        `json:"storage"`
	Counts   Counts        `json:"counts"`
	Database BackendStatus `json:"database"`
	Redis    BackendStatus `json:"redis"`
	Runtime  RuntimeStats  `json:"runtime"`
}

// Counts are taken from whichever backend is active, so in demo mode they
// describe the in-memory stores.
type Counts struct {
	Users       int            `json:"users"`
	UsersByRole map[string]int `json:"usersByRole"`
	Entities    map[string]int `json:"entities"`
}

// BackendStatus describes an optional dependency. Pool is omitted when the
// dependency is not configured.
type BackendStatus struct {
	Configured bool `json:"configured"`
	Healthy    bool `json:"healthy"`
	Pool       any  `json:"pool,omitempty"`
}

type DBPoolStats struct {
	MaxOpen      int    `json:"maxOpen"`
	Open         int    `json:"open"`
	InUse        int    `json:"inUse"`
	Idle         int    `json:"idle"`
	WaitCount    int64  `json:"waitCount"`
	WaitDuration string `json:"waitDuration"`
	ClosedIdle   int64  `json:"closedIdle"`
	ClosedMaxAge int64  `json:"closedMaxAge"`
}

func newDBPoolStats(s sql.DBStats) DBPoolStats {
	return DBPoolStats{
		MaxOpen:      s.MaxOpenConnections,
		Open:         s.OpenConnections,
		InUse:        s.InUse,
		Idle:         s.Idle,
		WaitCount:    s.WaitCount,
		WaitDuration: s.WaitDuration.String(),
		ClosedIdle:   s.MaxIdleClosed + s.MaxIdleTimeClosed,
		ClosedMaxAge: s.MaxLifetimeClosed,
	}
}

type RedisPoolStats struct {
	Hits     uint32 `json:"hits"`
	Misses   uint32 `json:"misses"`
	Timeouts uint32 `json:"timeouts"`
	Total    uint32 `json:"total"`
	Idle     uint32 `json:"idle"`
	Stale    uint32 `json:"stale"`
}

func newRedisPoolStats(s *redis.PoolStats) *RedisPoolStats {
	if s == nil {
		return nil
	}
	return &RedisPoolStats{
		Hits:     s.Hits,
		Misses:   s.Misses,
		Timeouts: s.Timeouts,
		Total:    s.TotalConns,
		Idle:     s.IdleConns,
		Stale:    s.StaleConns,
	}
}

type RuntimeStats struct {
	GoVersion  string `json:"goVersion"`
	Goroutines int    `json:"goroutines"`
	CPUs       int    `json:"cpus"`
	HeapBytes  uint64 `json:"heapBytes"`
	SysBytes   uint64 `json:"sysBytes"`
	GCCycles   uint32 `json:"gcCycles"`
}

func readRuntime() RuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return RuntimeStats{
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
		HeapBytes:  m.HeapAlloc,
		SysBytes:   m.Sys,
		GCCycles:   m.NumGC,
	}
}
