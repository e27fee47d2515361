package booking

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"salonpro-web/models"
)

func TestSlotBoardTwoPhaseUpdate(t *testing.T) {
	b := NewSlotBoard()
	b.Load("2025-06-01", slotList(1, 2))

	if err := b.Begin(1, models.SlotBlocked); err != nil {
		t.Fatalf("begin: %v", err)
	}
	it, _ := b.Item(1)
	if it.Phase != PhasePending || it.Slot.Status != models.SlotBlocked || it.Previous != models.SlotAvailable {
		t.Fatalf("unexpected pending row %+v", it)
	}
	if err := b.Begin(1, models.SlotCancelled); !errors.Is(err, ErrSlotBusy) {
		t.Fatalf("expected busy, got %v", err)
	}
	if err := b.Commit(1, models.ServiceSlot{ID: 1, Status: models.SlotBlocked, Date: "2025-06-01"}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if it, _ := b.Item(1); it.Phase != PhaseCommitted {
		t.Fatalf("expected committed, got %s", it.Phase)
	}

	if err := b.Begin(2, models.SlotCancelled); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := b.Revert(2); err != nil {
		t.Fatalf("revert: %v", err)
	}
	it, _ = b.Item(2)
	if it.Phase != PhaseReverted || it.Slot.Status != models.SlotAvailable {
		t.Fatalf("revert should restore previous status, got %+v", it)
	}
	if !b.Stale() || !b.NeedsLoad("2025-06-01") {
		t.Fatal("revert should mark the board stale")
	}
}

func TestSlotBoardRejectsSystemStatuses(t *testing.T) {
	b := NewSlotBoard()
	slots := slotList(1, 2)
	slots[1].Status = models.SlotReserved
	b.Load("2025-06-01", slots)

	if err := b.Begin(1, models.SlotReserved); err == nil {
		t.Fatal("reserved is not staff editable")
	}
	if err := b.Begin(2, models.SlotAvailable); err == nil {
		t.Fatal("a reserved slot cannot be edited by staff")
	}
	if err := b.Begin(1, models.SlotAvailable); err == nil {
		t.Fatal("same status is not a transition")
	}
	if err := b.Begin(42, models.SlotBlocked); !errors.Is(err, ErrSlotUnknown) {
		t.Fatalf("expected unknown, got %v", err)
	}
	it, _ := b.Item(2)
	if it.Options() != nil {
		t.Fatalf("reserved slot should offer no options, got %v", it.Options())
	}
}

func TestPreviewSlots(t *testing.T) {
	got, err := PreviewSlots("2025-06-01", "09:00", "12:00", 30)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("expected 6 windows, got %d", len(got))
	}
	for i, w := range got {
		start, _ := time.Parse(clockLayout, w.StartTime)
		end, _ := time.Parse(clockLayout, w.EndTime)
		if end.Sub(start) != 30*time.Minute {
			t.Fatalf("window %d is %v wide", i, end.Sub(start))
		}
		if i > 0 && got[i-1].EndTime != w.StartTime {
			t.Fatalf("windows %d and %d are not contiguous", i-1, i)
		}
	}
	if got[0].StartTime != "09:00" || got[5].EndTime != "12:00" {
		t.Fatalf("window not covered exactly: %s..%s", got[0].StartTime, got[5].EndTime)
	}

	bad := []struct {
		date, start, end string
		minutes          int
	}{
		{"2025-06-01", "12:00", "09:00", 30},
		{"2025-06-01", "09:00", "09:00", 30},
		{"2025-06-01", "09:00", "09:20", 30},
		{"2025-06-01", "09:00", "12:00", 0},
		{"01/06/2025", "09:00", "12:00", 30},
		{"2025-06-01", "9am", "12:00", 30},
	}
	for _, tc := range bad {
		if _, err := PreviewSlots(tc.date, tc.start, tc.end, tc.minutes); err == nil {
			t.Fatalf("expected error for %+v", tc)
		}
	}
}

func TestRegistryPrune(t *testing.T) {
	r := NewRegistry()
	base := time.Now()
	r.now = func() time.Time { return base.Add(-2 * time.Hour) }
	old := r.Get("old")
	r.now = func() time.Time { return base }
	r.Get("fresh")

	if r.Get("old") != old {
		t.Fatal("workspace should be reused")
	}
	r.now = func() time.Time { return base.Add(-2 * time.Hour) }
	r.Get("old")

	if n := r.Prune(base.Add(-time.Hour)); n != 1 {
		t.Fatalf("expected one pruned, got %d", n)
	}
	if r.Len() != 1 {
		t.Fatalf("expected one workspace left, got %d", r.Len())
	}
	r.Drop("fresh")
	if r.Len() != 0 {
		t.Fatal("drop should remove the workspace")
	}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
