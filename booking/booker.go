package booking

import (
	"context"

	"github.com/rs/zerolog"

	"salonpro-web/apiclient"
	"salonpro-web/models"
	"salonpro-web/services"
)

// Booker drives the client wizard against the API.
type Booker struct {
	catalog      *services.CatalogService
	slots        *services.SlotService
	appointments *services.AppointmentService
	logger       zerolog.Logger
}

func NewBooker(catalog *services.CatalogService, slots *services.SlotService, appointments *services.AppointmentService, logger zerolog.Logger) *Booker {
	return &Booker{catalog: catalog, slots: slots, appointments: appointments, logger: logger}
}

// LoadServices fills the wizard with the bookable services.
func (b *Booker) LoadServices(ctx context.Context, w *Wizard) error {
	list, err := b.catalog.Active(ctx)
	if err != nil {
		return err
	}
	w.SetServices(list)
	return nil
}

// LoadSlots fetches availability for the wizard's current service and date.
// A response that arrives after the selection moved on is dropped.
func (b *Booker) LoadSlots(ctx context.Context, w *Wizard) error {
	serviceID, date, gen, ok := w.Query()
	if !ok {
		return nil
	}
	list, err := b.slots.Available(ctx, serviceID, date)
	if err != nil {
		return err
	}
	if !w.ApplySlots(gen, list) {
		b.logger.Debug().Int64("service", serviceID).Str("date", date).Msg("discarding superseded slot list")
	}
	return nil
}

// Reload re-fetches availability for the current filters, keeping the
// selection only while it is still offered.
func (b *Booker) Reload(ctx context.Context, w *Wizard) error {
	if _, _, _, ok := w.Query(); !ok {
		return nil
	}
	w.Refresh()
	return b.LoadSlots(ctx, w)
}

// Submit books the selected slot. On success the slot selection is cleared and
// availability is re-fetched for the same service and date. When the API
// rejects the booking the list is reloaded too, so a slot taken in the
// meantime disappears along with its selection.
func (b *Booker) Submit(ctx context.Context, w *Wizard, notes string) (*models.Appointment, error) {
	sum, ok := w.Summary()
	if !ok {
		return nil, ErrNoSelection
	}
	staffID, err := ResolveStaffID(sum.Service, sum.Slot)
	if err != nil {
		return nil, err
	}
	appt, err := b.appointments.Create(ctx, models.CreateAppointmentRequest{
		ServiceID: sum.Service.ID,
		StaffID:   staffID,
		Date:      sum.Slot.Date,
		StartTime: sum.Slot.StartTime,
		Notes:     notes,
	})
	if err != nil {
		b.logger.Info().Err(err).Int64("slot", sum.Slot.ID).Msg("booking rejected")
		if !apiclient.IsKind(err, apiclient.KindAuth) {
			if rerr := b.Reload(ctx, w); rerr != nil {
				b.logger.Warn().Err(rerr).Msg("reload slots after rejected booking")
			}
		}
		return nil, err
	}
	w.Invalidate()
	if err := b.LoadSlots(ctx, w); err != nil {
		b.logger.Warn().Err(err).Msg("reload slots after booking")
	}
	return appt, nil
}
