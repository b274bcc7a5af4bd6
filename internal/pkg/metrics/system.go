package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const collectInterval = 5 * time.Second

var (
	systemCPUUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_cpu_usage_percent",
		Help: "Host CPU usage percentage",
	})

	systemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_usage_bytes",
		Help: "Host memory in use, bytes",
	})

	heapInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "application_memory_usage_bytes",
		Help: "Go heap allocation, bytes",
	})
)

// StartSystemMetricsCollector запускает фоновый сбор системных метрик.
// Горутина живёт до конца процесса, отдельной остановки не требуется.
func StartSystemMetricsCollector() {
	go func() {
		ticker := time.NewTicker(collectInterval)
		defer ticker.Stop()

		for range ticker.C {
			collect()
		}
	}()
}

func collect() {
	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		systemCPUUsage.Set(percents[0])
	}

	if vmStat, err := mem.VirtualMemory(); err == nil {
		systemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	heapInUse.Set(float64(m.Alloc))
}
