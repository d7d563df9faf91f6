//go:generate mockgen -source=monitor.go -destination=monitor_mock.go -package=monitor
package monitor

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/shirou/gopsutil/v4/process"
)

const mbPerGB = 1024

// Stats contains process resource statistics
type Stats struct {
	CPU float64
	MEM float64 // in MB
}

// String renders the stats for the footer
func (s Stats) String() string {
	if s.CPU == 0 && s.MEM == 0 {
		return ""
	}

	return fmt.Sprintf("cpu %s • mem %s", FormatCPU(s.CPU), FormatMEM(s.MEM))
}

// Monitor samples resource usage of a process
type Monitor interface {
	GetStats(ctx context.Context, pid int) (Stats, error)
	// Self samples the running logex process
	Self(ctx context.Context) (Stats, error)
}

type monitor struct{}

// NewMonitor creates a new Monitor instance
func NewMonitor() Monitor {
	return &monitor{}
}

func (m *monitor) GetStats(ctx context.Context, pid int) (Stats, error) {
	if pid <= 0 || pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(pid)) // #nosec G115 -- PID range checked above
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	return stats, nil
}

func (m *monitor) Self(ctx context.Context) (Stats, error) {
	return m.GetStats(ctx, os.Getpid())
}

// FormatCPU formats a CPU percentage value
func FormatCPU(cpu float64) string {
	return fmt.Sprintf("%.1f%%", cpu)
}

// FormatMEM formats a memory value in MB or GB
func FormatMEM(mem float64) string {
	if mem < mbPerGB {
		return fmt.Sprintf("%.0fMB", mem)
	}

	return fmt.Sprintf("%.1fGB", mem/mbPerGB)
}
