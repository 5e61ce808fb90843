package gen

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genTicketSales produces per-event purchase histories for completed
// events. Events are independent, so the fan-out runs on a bounded worker
// pool; each event draws from a stream keyed by its index and per-event
// results are flattened in event order with ids assigned afterwards, so
// worker count never changes the output.
func genTicketSales(ctx context.Context, cfg *config.Config, src *rng.Source, events []model.Event, venues []model.Venue) ([]model.TicketSale, error) {
	venuesByID := make(map[string]model.Venue, len(venues))
	for _, v := range venues {
		venuesByID[v.ID] = v
	}

	results := make([][]model.TicketSale, len(events))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, event := range events {
		if event.Status != model.StatusCompleted || event.Attendance == nil {
			continue
		}
		i, event := i, event
		g.Go(func() error {
			r := src.Stream("ticket_sales", uint64(i))
			results[i] = eventSales(r, cfg, event, venuesByID[event.VenueID])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sales []model.TicketSale
	for _, batch := range results {
		for _, s := range batch {
			s.ID = fmt.Sprintf("TKT_%06d", len(sales)+1)
			sales = append(sales, s)
		}
	}
	return sales, nil
}

var saleQuantityWeights = []float64{0.2, 0.4, 0.15, 0.15, 0.05, 0.05}

// eventSales spreads purchases across the pre-event window with a
// back-loaded demand curve. Quantity is capped against remaining venue
// capacity on every sale, and a completed event always records at least
// one sale.
func eventSales(r *rand.Rand, cfg *config.Config, event model.Event, venue model.Venue) []model.TicketSale {
	target := *event.Attendance
	if target < 1 {
		target = 1
	}
	window := int(event.Date.Sub(event.OnSaleDate).Hours() / 24)
	if window < 1 {
		window = 1
	}

	estimated := int(float64(target)/cfg.Sales.AvgTicketsPerSale) + 1
	sales := make([]model.TicketSale, 0, estimated)

	remaining := venue.Capacity
	sold := 0
	for sold < target && remaining > 0 {
		qty := rng.WeightedIndex(r, saleQuantityWeights) + 1
		if qty > remaining {
			qty = remaining
		}

		var offset int // days after the on-sale date
		switch u := r.Float64(); {
		case u < 0.4:
			offset = rng.Between(r, 0, min(7, window))
		case u < 0.7:
			offset = window - rng.Between(r, 0, min(7, window))
		default:
			offset = rng.Between(r, min(8, window), window)
		}
		saleDate := event.OnSaleDate.AddDate(0, 0, offset)
		daysBefore := int(event.Date.Sub(saleDate).Hours() / 24)
		if daysBefore < 0 {
			daysBefore = 0
			saleDate = event.Date
		}

		ticketType := "general"
		unit := event.BasePrice
		if event.VIPPrice != nil && rng.Chance(r, 0.15) {
			ticketType = "vip"
			unit = *event.VIPPrice
		}

		qtyD := decimal.NewFromInt(int64(qty))
		fees := venue.TicketFee.Mul(qtyD).Round(2)
		sales = append(sales, model.TicketSale{
			EventID:         event.ID,
			SaleDate:        saleDate,
			DaysBeforeEvent: daysBefore,
			Quantity:        qty,
			Type:            ticketType,
			UnitPrice:       unit,
			Fees:            fees,
			Total:           unit.Mul(qtyD).Add(fees).Round(2),
		})
		sold += qty
		remaining -= qty
	}
	return sales
}
