package monitor

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewMonitor(t *testing.T) {
	m := NewMonitor()

	assert.NotNil(t, m)
}

func Test_GetStats_InvalidPID(t *testing.T) {
	m := NewMonitor()
	ctx := context.Background()

	tests := []struct {
		name string
		pid  int
	}{
		{name: "zero PID", pid: 0},
		{name: "negative PID", pid: -1},
		{name: "beyond int32", pid: 2147483648},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := m.GetStats(ctx, tt.pid)

			assert.NoError(t, err)
			assert.Equal(t, Stats{}, stats)
		})
	}
}

func Test_GetStats_CurrentProcess(t *testing.T) {
	m := NewMonitor()

	stats, err := m.GetStats(context.Background(), os.Getpid())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, stats.CPU, 0.0)
	assert.Greater(t, stats.MEM, 0.0)
}

func Test_Self(t *testing.T) {
	m := NewMonitor()

	stats, err := m.Self(context.Background())

	require.NoError(t, err)
	assert.Greater(t, stats.MEM, 0.0)
}

func Test_GetStats_NonExistentProcess(t *testing.T) {
	m := NewMonitor()

	_, err := m.GetStats(context.Background(), 999999999)

	assert.Error(t, err)
}

func Test_GetStats_ContextTimeout(t *testing.T) {
	m := NewMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()

	time.Sleep(time.Millisecond)

	stats, err := m.GetStats(ctx, os.Getpid())
	if err == nil {
		assert.GreaterOrEqual(t, stats.MEM, 0.0)
	}
}

func Test_FormatCPU(t *testing.T) {
	assert.Equal(t, "0.0%", FormatCPU(0))
	assert.Equal(t, "12.5%", FormatCPU(12.46))
	assert.Equal(t, "150.0%", FormatCPU(150))
}

func Test_FormatMEM(t *testing.T) {
	assert.Equal(t, "12MB", FormatMEM(12.3))
	assert.Equal(t, "1023MB", FormatMEM(1023))
	assert.Equal(t, "1.0GB", FormatMEM(1024))
	assert.Equal(t, "2.5GB", FormatMEM(2560))
}

func Test_Stats_String(t *testing.T) {
	assert.Empty(t, Stats{}.String())
	assert.Equal(t, "cpu 1.5% • mem 40MB", Stats{CPU: 1.5, MEM: 40}.String())
}
