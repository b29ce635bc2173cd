package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paologalligit/moffi-booker/entities"
)

func testCatalog() []entities.Building {
	return []entities.Building{
		{
			Id: "b1", Name: "Paris", CompanyId: "c1",
			Floors: []entities.Floor{
				{
					Name: "Ground", Level: 0,
					Workspace: []entities.Workspace{
						{
							Id: "w1", Name: "Open space", CompanyId: "c1",
							Seats: []entities.Seat{
								{Id: "s1", Name: "A1"},
								{Id: "s2", Name: "A2"},
							},
						},
					},
				},
				{
					Name: "First", Level: 1,
					Workspace: []entities.Workspace{
						{
							Id: "w2", Name: "Quiet room", CompanyId: "c1",
							Seats: []entities.Seat{
								{Id: "s3", Name: "B1"},
								{Id: "s4", Name: "A1"},
							},
						},
					},
				},
			},
		},
		{Id: "b2", Name: "Lyon", CompanyId: "c2"},
	}
}

func TestSelectCity_DerivesWorkspacesAcrossFloors(t *testing.T) {
	s := New(testCatalog())

	assert.NoError(t, s.SelectCity("Paris"))

	workspaces := s.Workspaces()
	assert.Len(t, workspaces, 2)
	assert.Equal(t, "w1", workspaces[0].Id)
	assert.Equal(t, "w2", workspaces[1].Id)
}

func TestSelectCity_UnknownName(t *testing.T) {
	s := New(testCatalog())

	assert.Error(t, s.SelectCity("Marseille"))
	assert.Empty(t, s.Workspaces())
}

func TestSelectWorkspace_SetsSeats(t *testing.T) {
	s := New(testCatalog())
	assert.NoError(t, s.SelectCity("Paris"))

	assert.NoError(t, s.SelectWorkspace("Open space"))

	assert.Equal(t, "w1", s.Workspace().Id)
	assert.Len(t, s.Seats(), 2)
}

func TestSelectWorkspace_ClearsPreviousSeat(t *testing.T) {
	s := New(testCatalog())
	assert.NoError(t, s.SelectCity("Paris"))
	assert.NoError(t, s.SelectWorkspace("Open space"))
	assert.NoError(t, s.SelectSeat("A2"))
	assert.True(t, s.CanOrder())

	// Switching workspace invalidates the seat choice
	assert.NoError(t, s.SelectWorkspace("Quiet room"))

	assert.False(t, s.CanOrder())
	assert.Empty(t, s.Seat().Name)
}

func TestSelectSeat_NameInNewWorkspace(t *testing.T) {
	// "A1" exists in both workspaces; after switching, the seat must come
	// from the now-current list
	s := New(testCatalog())
	assert.NoError(t, s.SelectCity("Paris"))
	assert.NoError(t, s.SelectWorkspace("Open space"))
	assert.NoError(t, s.SelectSeat("A1"))
	assert.Equal(t, "s1", s.Seat().Id)

	assert.NoError(t, s.SelectWorkspace("Quiet room"))
	assert.NoError(t, s.SelectSeat("A1"))

	assert.Equal(t, "s4", s.Seat().Id)
}

func TestSelectSeat_AbsentNameFailsAndKeepsState(t *testing.T) {
	s := New(testCatalog())
	assert.NoError(t, s.SelectCity("Paris"))
	assert.NoError(t, s.SelectWorkspace("Open space"))
	assert.NoError(t, s.SelectSeat("A1"))

	assert.Error(t, s.SelectSeat("Z9"))

	assert.Equal(t, "s1", s.Seat().Id)
	assert.True(t, s.CanOrder())
}

func TestSelectSeat_CaseSensitive(t *testing.T) {
	s := New(testCatalog())
	assert.NoError(t, s.SelectCity("Paris"))
	assert.NoError(t, s.SelectWorkspace("Open space"))

	assert.Error(t, s.SelectSeat("a1"))
}

func TestCanOrder(t *testing.T) {
	s := New(testCatalog())
	assert.False(t, s.CanOrder())

	assert.NoError(t, s.SelectCity("Paris"))
	assert.False(t, s.CanOrder())

	assert.NoError(t, s.SelectWorkspace("Open space"))
	assert.False(t, s.CanOrder())

	assert.NoError(t, s.SelectSeat("A1"))
	assert.True(t, s.CanOrder())
}
