package selection

import (
	"fmt"

	"github.com/paologalligit/moffi-booker/entities"
)

// Selection tracks the user's current pointers into a resolved catalog. Each
// transition narrows the next one: picking a city derives the workspace list,
// picking a workspace derives the seat list. The catalog itself is never
// mutated. Lookups are case-sensitive exact-name matches, first match winning
// when names collide.
type Selection struct {
	buildings  []entities.Building
	workspaces []entities.Workspace
	seats      []entities.Seat
	workspace  entities.Workspace
	seat       entities.Seat
}

func New(buildings []entities.Building) *Selection {
	return &Selection{buildings: buildings}
}

// SelectCity picks the first building with the given name and derives the
// flattened workspace list across all its floors. A miss leaves the current
// state untouched.
func (s *Selection) SelectCity(name string) error {
	for i := range s.buildings {
		if s.buildings[i].Name == name {
			s.workspaces = s.buildings[i].Workspaces()
			return nil
		}
	}
	return fmt.Errorf("no building named %q in the catalog", name)
}

// SelectWorkspace picks the first workspace with the given name among the
// current city's workspaces and resets the seat list to its seats. Any
// previously selected seat is cleared: a seat belongs to one workspace, and
// carrying it across a workspace change could submit a seat from somewhere
// else entirely.
func (s *Selection) SelectWorkspace(name string) error {
	for i := range s.workspaces {
		if s.workspaces[i].Name == name {
			s.workspace = s.workspaces[i]
			s.seats = s.workspaces[i].Seats
			s.seat = entities.Seat{}
			return nil
		}
	}
	return fmt.Errorf("no workspace named %q in the selected city", name)
}

// SelectSeat picks the first seat with the given name among the current
// workspace's seats. A miss leaves the current state untouched.
func (s *Selection) SelectSeat(name string) error {
	for i := range s.seats {
		if s.seats[i].Name == name {
			s.seat = s.seats[i]
			return nil
		}
	}
	return fmt.Errorf("no seat named %q in the selected workspace", name)
}

// CanOrder reports whether a reservation can be built: a workspace with an id
// and a seat with a name must both be selected.
func (s *Selection) CanOrder() bool {
	return s.workspace.Id != "" && s.seat.Name != ""
}

func (s *Selection) Workspace() entities.Workspace { return s.workspace }

func (s *Selection) Seat() entities.Seat { return s.seat }

// Workspaces returns the workspaces derived from the selected city.
func (s *Selection) Workspaces() []entities.Workspace { return s.workspaces }

// Seats returns the seats of the selected workspace.
func (s *Selection) Seats() []entities.Seat { return s.seats }
