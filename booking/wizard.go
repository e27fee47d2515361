// Package booking holds the per-session state machines behind the booking
// pages: the client wizard and the provider slot board.
package booking

import (
	"errors"
	"sync"

	"salonpro-web/models"
)

var (
	ErrNoSelection     = errors.New("selecciona un servicio, una fecha y un horario")
	ErrSlotNotOffered  = errors.New("el horario seleccionado no está disponible")
	ErrStaffUnresolved = errors.New("no se pudo determinar el profesional del servicio")
)

// Wizard is the client booking flow. Changing the service or the date always
// drops the selected slot and starts a new load generation; slot lists from an
// older generation are discarded when they arrive.
type Wizard struct {
	mu sync.Mutex

	services  []models.Service
	serviceID int64
	date      string

	gen    uint64
	loaded bool
	slots  []models.ServiceSlot
	slotID int64
}

// WizardView is a snapshot for rendering.
type WizardView struct {
	Services       []models.Service
	ServiceID      int64
	Date           string
	Slots          []models.ServiceSlot
	SelectedSlotID int64
	Loaded         bool
	NoAvailability bool
	Summary        *Summary
}

type Summary struct {
	Service models.Service
	Slot    models.ServiceSlot
}

func NewWizard() *Wizard { return &Wizard{} }

func (w *Wizard) SetServices(list []models.Service) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.services = append([]models.Service(nil), list...)
}

// SelectService changes the filter service and returns the new generation.
// Re-selecting the current service changes nothing.
func (w *Wizard) SelectService(id int64) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if id == w.serviceID {
		return w.gen
	}
	w.serviceID = id
	return w.reset()
}

// SelectDate changes the filter date and returns the new generation.
func (w *Wizard) SelectDate(date string) uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if date == w.date {
		return w.gen
	}
	w.date = date
	return w.reset()
}

func (w *Wizard) reset() uint64 {
	w.gen++
	w.loaded = false
	w.slots = nil
	w.slotID = 0
	return w.gen
}

// Query reports what to load next. ok is false until both service and date are set.
func (w *Wizard) Query() (serviceID int64, date string, gen uint64, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.serviceID, w.date, w.gen, w.serviceID != 0 && w.date != ""
}

// Invalidate forces the next load to fetch again, keeping the filters.
func (w *Wizard) Invalidate() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reset()
}

// Refresh starts a new load generation for the same filters. Unlike
// Invalidate the current list and selection stay until the fresh list lands.
func (w *Wizard) Refresh() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	return w.gen
}

// ApplySlots stores a slot list loaded for gen. Results of a superseded
// generation are dropped and ApplySlots returns false. A selected slot that
// the new list no longer offers is deselected.
func (w *Wizard) ApplySlots(gen uint64, slots []models.ServiceSlot) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		return false
	}
	w.slots = append([]models.ServiceSlot{}, slots...)
	w.loaded = true
	if w.slotID != 0 && !w.offered(w.slotID) {
		w.slotID = 0
	}
	return true
}

func (w *Wizard) offered(id int64) bool {
	for _, s := range w.slots {
		if s.ID == id && s.Status == models.SlotAvailable {
			return true
		}
	}
	return false
}

// SelectSlot arms the summary. Only a slot of the current list can be picked.
func (w *Wizard) SelectSlot(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.offered(id) {
		return ErrSlotNotOffered
	}
	w.slotID = id
	return nil
}

func (w *Wizard) ClearSlot() {
	w.mu.Lock()
	w.slotID = 0
	w.mu.Unlock()
}

func (w *Wizard) Summary() (*Summary, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.summary()
}

func (w *Wizard) summary() (*Summary, bool) {
	if w.slotID == 0 {
		return nil, false
	}
	var slot *models.ServiceSlot
	for i := range w.slots {
		if w.slots[i].ID == w.slotID {
			slot = &w.slots[i]
			break
		}
	}
	if slot == nil {
		return nil, false
	}
	out := &Summary{Slot: *slot}
	found := false
	for _, svc := range w.services {
		if svc.ID == w.serviceID {
			out.Service = svc
			found = true
			break
		}
	}
	if !found && slot.Service != nil {
		out.Service = *slot.Service
	}
	if out.Service.ID == 0 {
		out.Service.ID = w.serviceID
	}
	return out, true
}

func (w *Wizard) View() WizardView {
	w.mu.Lock()
	defer w.mu.Unlock()
	v := WizardView{
		Services:       append([]models.Service(nil), w.services...),
		ServiceID:      w.serviceID,
		Date:           w.date,
		Slots:          append([]models.ServiceSlot(nil), w.slots...),
		SelectedSlotID: w.slotID,
		Loaded:         w.loaded,
		NoAvailability: w.loaded && len(w.slots) == 0,
	}
	if s, ok := w.summary(); ok {
		v.Summary = s
	}
	return v
}

// ResolveStaffID finds the provider who will attend the booking. The service
// payload is preferred; the slot's embedded service fills the gaps.
func ResolveStaffID(service models.Service, slot models.ServiceSlot) (int64, error) {
	if service.ProviderID != 0 {
		return service.ProviderID, nil
	}
	if service.Provider != nil && service.Provider.ID != 0 {
		return service.Provider.ID, nil
	}
	if slot.Service != nil {
		if slot.Service.ProviderID != 0 {
			return slot.Service.ProviderID, nil
		}
		if slot.Service.Provider != nil && slot.Service.Provider.ID != 0 {
			return slot.Service.Provider.ID, nil
		}
	}
	return 0, ErrStaffUnresolved
}

// StatusOptions lists the statuses staff are offered for an appointment.
func StatusOptions(status models.AppointmentStatus) []models.AppointmentStatus {
	return status.NextStatuses()
}
