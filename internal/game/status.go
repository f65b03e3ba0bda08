package game

import (
	"time"

	"github.com/ayabdnabi/virtual-pet/internal/catalog"
	"github.com/ayabdnabi/virtual-pet/internal/pet"
)

// Status is a point-in-time copy of everything the presentation layer
// renders. Maps are snapshots; mutating them changes nothing.
type Status struct {
	Pet      pet.Pet
	State    pet.State
	Warnings []string

	Coins   int
	Foods   map[catalog.Food]int
	Toys    map[catalog.Toy]int
	Gifts   map[catalog.Gift]int
	Outfits map[string]bool

	PlayTime time.Duration
	VetWait  int
	PlayWait int
}

// Status captures the current session state under the lock.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	unix := int(now.Unix())
	return Status{
		Pet:      *s.pet,
		State:    s.pet.CurrentState(),
		Warnings: s.pet.Warnings(),
		Coins:    s.inv.Coins(),
		Foods:    s.inv.Foods(),
		Toys:     s.inv.Toys(),
		Gifts:    s.inv.Gifts(),
		Outfits:  s.inv.Outfits(),
		PlayTime: s.played + now.Sub(s.segmentStart),
		VetWait:  s.pet.VetWait(unix),
		PlayWait: s.pet.PlayWait(unix),
	}
}
