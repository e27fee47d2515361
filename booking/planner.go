package booking

import (
	"context"

	"github.com/rs/zerolog"

	"salonpro-web/models"
	"salonpro-web/services"
)

// Planner drives the provider slot board against the API.
type Planner struct {
	slots  *services.SlotService
	logger zerolog.Logger
}

func NewPlanner(slots *services.SlotService, logger zerolog.Logger) *Planner {
	return &Planner{slots: slots, logger: logger}
}

// Refresh loads the board for date when it is empty, stale or on another date.
func (p *Planner) Refresh(ctx context.Context, board *SlotBoard, date string) error {
	if !board.NeedsLoad(date) {
		return nil
	}
	list, err := p.slots.Mine(ctx, date)
	if err != nil {
		return err
	}
	board.Load(date, list)
	return nil
}

// Generate checks the window locally, then asks the API to create the slots.
// durationMinutes nil lets the API use the service duration; serviceDuration
// is what the preview falls back to in that case. When neither is known the
// window is left for the API to judge.
func (p *Planner) Generate(ctx context.Context, board *SlotBoard, in models.GenerateSlotsRequest, serviceDuration int) ([]models.ServiceSlot, error) {
	minutes := serviceDuration
	if in.DurationMinutes != nil {
		minutes = *in.DurationMinutes
	}
	// without a known duration the API applies its own default, so only a
	// request with one is checked locally
	if in.DurationMinutes != nil || minutes > 0 {
		if _, err := PreviewSlots(in.Date, in.StartTime, in.EndTime, minutes); err != nil {
			return nil, err
		}
	}
	created, err := p.slots.Generate(ctx, in)
	if err != nil {
		return nil, err
	}
	board.MarkStale()
	p.logger.Info().Int64("service", in.ServiceID).Str("date", in.Date).Int("slots", len(created)).Msg("slots generated")
	return created, nil
}

// SetStatus runs the two-phase update of one row.
func (p *Planner) SetStatus(ctx context.Context, board *SlotBoard, id int64, status models.SlotStatus) error {
	if err := board.Begin(id, status); err != nil {
		return err
	}
	updated, err := p.slots.UpdateStatus(ctx, id, models.UpdateSlotStatusRequest{Status: status})
	if err != nil {
		if rerr := board.Revert(id); rerr != nil {
			p.logger.Error().Err(rerr).Int64("slot", id).Msg("revert slot")
		}
		return err
	}
	return board.Commit(id, *updated)
}

func (p *Planner) Delete(ctx context.Context, board *SlotBoard, id int64) error {
	if err := p.slots.Delete(ctx, id); err != nil {
		board.MarkStale()
		return err
	}
	board.Remove(id)
	return nil
}
