package stats_refresh

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"waterboys/internal/service/order"
)

var (
	deliveredLitersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivered_liters_total",
			Help: "Total liters of water across delivered orders",
		},
	)

	deliveredRevenueTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivered_revenue_total",
			Help: "Total revenue across delivered orders",
		},
	)

	deliveredOrdersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivered_orders_total",
			Help: "Number of delivered orders",
		},
	)
)

type Service interface {
	DeliveredTotals(ctx context.Context) (order.DeliveredStats, error)
}

// StatsRefresh периодически пересчитывает сводку по доставленным заказам
// и публикует ее gauge-метриками.
type StatsRefresh struct {
	service  Service
	interval time.Duration
}

func NewStatsRefresh(service Service, interval time.Duration) *StatsRefresh {
	return &StatsRefresh{
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (s *StatsRefresh) TTL() time.Duration {
	return s.interval
}

// Do выполняет логику задачи.
func (s *StatsRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	stats, err := s.service.DeliveredTotals(ctxWithTimeout)
	if err != nil {
		return err
	}

	deliveredLitersTotal.Set(stats.Liters)
	deliveredRevenueTotal.Set(stats.Revenue)
	deliveredOrdersTotal.Set(float64(stats.Clients))

	return nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (s *StatsRefresh) Info() string {
	return "delivered stats refresh"
}
