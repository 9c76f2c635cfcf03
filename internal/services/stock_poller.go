package services

import (
	"context"
	"log/slog"
	"time"

	"dashboard-service/internal/websocket"
)

// StockPoller periodically refreshes quotes for the watched symbols and
// broadcasts them as stock_update events. It is one of the producers feeding
// the fan-out; the Kafka consumer and the Redis bridge are the others.
type StockPoller struct {
	finance     *FinanceService
	broadcaster *websocket.Broadcaster
	interval    time.Duration
	symbols     []string
}

func NewStockPoller(finance *FinanceService, broadcaster *websocket.Broadcaster, interval time.Duration, symbols []string) *StockPoller {
	return &StockPoller{
		finance:     finance,
		broadcaster: broadcaster,
		interval:    interval,
		symbols:     symbols,
	}
}

// Run polls until the context is cancelled. Broadcast is fire-and-forget, so
// a failed refresh of one symbol only costs that tick.
func (p *StockPoller) Run(ctx context.Context) {
	if len(p.symbols) == 0 {
		slog.Info("Stock poller disabled, no watched symbols")
		return
	}

	slog.Info("Stock poller started", "symbols", p.symbols, "interval", p.interval)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.refresh(ctx)
		case <-ctx.Done():
			slog.Info("Stock poller shutting down")
			return
		}
	}
}

func (p *StockPoller) refresh(ctx context.Context) {
	for _, symbol := range p.symbols {
		quote, err := p.finance.GetQuote(ctx, symbol)
		if err != nil {
			slog.Warn("Failed to refresh quote", "symbol", symbol, "error", err)
			continue
		}

		p.broadcaster.PublishStockUpdate(quote.Symbol, map[string]interface{}{
			"price":         quote.Price,
			"change":        quote.Change,
			"changePercent": quote.ChangePercent,
			"volume":        quote.Volume,
		})
	}
}
