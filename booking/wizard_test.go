package booking

import (
	"errors"
	"testing"

	"salonpro-web/models"
)

func slotList(ids ...int64) []models.ServiceSlot {
	out := make([]models.ServiceSlot, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.ServiceSlot{ID: id, ServiceID: 1, Date: "2025-06-01", StartTime: "09:00", EndTime: "09:30", Status: models.SlotAvailable})
	}
	return out
}

func TestChangingFiltersClearsSelectedSlot(t *testing.T) {
	w := NewWizard()
	w.SetServices([]models.Service{{ID: 1, Name: "Corte", ProviderID: 9}, {ID: 2, Name: "Tinte", ProviderID: 9}})
	w.SelectService(1)
	gen := w.SelectDate("2025-06-01")
	w.ApplySlots(gen, slotList(10, 11))
	if err := w.SelectSlot(10); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, ok := w.Summary(); !ok {
		t.Fatal("summary should be armed")
	}

	w.SelectService(2)
	if _, ok := w.Summary(); ok {
		t.Fatal("service change must clear the slot")
	}

	gen = w.SelectDate("2025-06-01")
	w.ApplySlots(gen, slotList(10))
	w.SelectSlot(10)
	w.SelectDate("2025-06-02")
	if v := w.View(); v.SelectedSlotID != 0 || v.Summary != nil {
		t.Fatalf("date change must clear the slot, got %+v", v)
	}
}

func TestReselectingSameFilterKeepsSelection(t *testing.T) {
	w := NewWizard()
	w.SelectService(1)
	gen := w.SelectDate("2025-06-01")
	w.ApplySlots(gen, slotList(10))
	w.SelectSlot(10)

	if got := w.SelectService(1); got != gen {
		t.Fatalf("same service should not start a new generation")
	}
	if v := w.View(); v.SelectedSlotID != 10 {
		t.Fatalf("selection lost: %+v", v)
	}
}

func TestOutOfOrderSlotResultsAreDiscarded(t *testing.T) {
	w := NewWizard()
	w.SelectService(1)
	old := w.SelectDate("2025-06-01")
	current := w.SelectDate("2025-06-02")

	if !w.ApplySlots(current, slotList(20)) {
		t.Fatal("current generation must apply")
	}
	if w.ApplySlots(old, slotList(10, 11, 12)) {
		t.Fatal("superseded generation must be dropped")
	}
	v := w.View()
	if len(v.Slots) != 1 || v.Slots[0].ID != 20 {
		t.Fatalf("stale list leaked into view: %+v", v.Slots)
	}
}

func TestEmptyAvailabilityIsNoAvailabilityNotError(t *testing.T) {
	w := NewWizard()
	w.SelectService(1)
	gen := w.SelectDate("2025-06-01")
	if v := w.View(); v.NoAvailability {
		t.Fatal("not loaded yet, must not claim no availability")
	}
	w.ApplySlots(gen, nil)
	v := w.View()
	if !v.Loaded || !v.NoAvailability || len(v.Slots) != 0 {
		t.Fatalf("expected loaded empty view, got %+v", v)
	}
}

func TestSelectSlotOnlyFromCurrentList(t *testing.T) {
	w := NewWizard()
	w.SelectService(1)
	gen := w.SelectDate("2025-06-01")
	w.ApplySlots(gen, slotList(10))
	if err := w.SelectSlot(99); !errors.Is(err, ErrSlotNotOffered) {
		t.Fatalf("expected ErrSlotNotOffered, got %v", err)
	}
}

func TestResolveStaffIDFallbacks(t *testing.T) {
	provider := &models.User{ID: 5}
	cases := []struct {
		name    string
		service models.Service
		slot    models.ServiceSlot
		want    int64
	}{
		{"service provider id", models.Service{ProviderID: 3, Provider: provider}, models.ServiceSlot{}, 3},
		{"service provider object", models.Service{Provider: provider}, models.ServiceSlot{}, 5},
		{"slot service provider id", models.Service{}, models.ServiceSlot{Service: &models.Service{ProviderID: 7}}, 7},
		{"slot service provider object", models.Service{}, models.ServiceSlot{Service: &models.Service{Provider: &models.User{ID: 8}}}, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveStaffID(tc.service, tc.slot)
			if err != nil || got != tc.want {
				t.Fatalf("expected %d got %d (%v)", tc.want, got, err)
			}
		})
	}
	if _, err := ResolveStaffID(models.Service{}, models.ServiceSlot{}); !errors.Is(err, ErrStaffUnresolved) {
		t.Fatalf("expected ErrStaffUnresolved, got %v", err)
	}
}

func TestStatusOptionsAreForwardTransitionsOnly(t *testing.T) {
	want := map[models.AppointmentStatus][]models.AppointmentStatus{
		models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
		models.StatusConfirmed: {models.StatusCompleted, models.StatusNoShow},
		models.StatusCompleted: {},
		models.StatusCancelled: {},
		models.StatusNoShow:    {},
	}
	for from, next := range want {
		got := StatusOptions(from)
		if len(got) != len(next) {
			t.Fatalf("%s: expected %v got %v", from, next, got)
		}
		for i := range next {
			if got[i] != next[i] {
				t.Fatalf("%s: expected %v got %v", from, next, got)
			}
		}
	}
	opts := StatusOptions(models.StatusPending)
	opts[0] = models.StatusNoShow
	if StatusOptions(models.StatusPending)[0] != models.StatusConfirmed {
		t.Fatal("options must not alias the transition table")
	}
}
