package booking

import (
	"errors"
	"fmt"
	"sync"

	"salonpro-web/models"
)

// Phase is where a slot row is in its two-phase status update.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhasePending   Phase = "pending"
	PhaseCommitted Phase = "committed"
	PhaseReverted  Phase = "reverted"
)

var (
	ErrSlotUnknown = errors.New("horario no encontrado")
	ErrSlotBusy    = errors.New("el horario tiene un cambio en curso")
)

type SlotItem struct {
	Slot     models.ServiceSlot
	Phase    Phase
	Previous models.SlotStatus
}

// Options lists the statuses the row may be moved to.
func (i SlotItem) Options() []models.SlotStatus {
	if i.Phase == PhasePending {
		return nil
	}
	return i.Slot.Status.StaffOptions()
}

// SlotBoard is the provider's slot list for one date. Status changes are
// applied locally first (pending) and then committed or reverted.
type SlotBoard struct {
	mu     sync.Mutex
	date   string
	items  []SlotItem
	loaded bool
	stale  bool
}

func NewSlotBoard() *SlotBoard { return &SlotBoard{} }

// Load replaces the board content with a fresh server list.
func (b *SlotBoard) Load(date string, slots []models.ServiceSlot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.date = date
	b.items = make([]SlotItem, 0, len(slots))
	for _, s := range slots {
		b.items = append(b.items, SlotItem{Slot: s, Phase: PhaseIdle})
	}
	b.loaded = true
	b.stale = false
}

// NeedsLoad reports whether the board must be fetched for date.
func (b *SlotBoard) NeedsLoad(date string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.loaded || b.stale || b.date != date
}

func (b *SlotBoard) Date() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.date
}

func (b *SlotBoard) Stale() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stale
}

func (b *SlotBoard) MarkStale() {
	b.mu.Lock()
	b.stale = true
	b.mu.Unlock()
}

func (b *SlotBoard) Items() []SlotItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]SlotItem(nil), b.items...)
}

func (b *SlotBoard) Item(id int64) (SlotItem, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.index(id)
	if i < 0 {
		return SlotItem{}, false
	}
	return b.items[i], true
}

func (b *SlotBoard) index(id int64) int {
	for i := range b.items {
		if b.items[i].Slot.ID == id {
			return i
		}
	}
	return -1
}

// Begin applies status locally and marks the row pending.
func (b *SlotBoard) Begin(id int64, status models.SlotStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.index(id)
	if i < 0 {
		return ErrSlotUnknown
	}
	it := &b.items[i]
	if it.Phase == PhasePending {
		return ErrSlotBusy
	}
	if !it.Slot.Status.StaffEditable() || !status.StaffEditable() || it.Slot.Status == status {
		return fmt.Errorf("no se puede pasar el horario de %s a %s", it.Slot.Status, status)
	}
	it.Previous = it.Slot.Status
	it.Slot.Status = status
	it.Phase = PhasePending
	return nil
}

// Commit settles a pending row with the server's copy of the slot.
func (b *SlotBoard) Commit(id int64, confirmed models.ServiceSlot) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.index(id)
	if i < 0 {
		return ErrSlotUnknown
	}
	it := &b.items[i]
	if it.Phase != PhasePending {
		return fmt.Errorf("slot %d is %s, not pending", id, it.Phase)
	}
	if confirmed.ID == id {
		if confirmed.Service == nil {
			confirmed.Service = it.Slot.Service
		}
		it.Slot = confirmed
	}
	it.Phase = PhaseCommitted
	return nil
}

// Revert restores the previous status of a pending row and marks the board
// stale so the next view re-fetches it.
func (b *SlotBoard) Revert(id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.index(id)
	if i < 0 {
		return ErrSlotUnknown
	}
	it := &b.items[i]
	if it.Phase != PhasePending {
		return fmt.Errorf("slot %d is %s, not pending", id, it.Phase)
	}
	it.Slot.Status = it.Previous
	it.Phase = PhaseReverted
	b.stale = true
	return nil
}

func (b *SlotBoard) Remove(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.index(id); i >= 0 {
		b.items = append(b.items[:i], b.items[i+1:]...)
	}
}
