package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/paologalligit/moffi-booker/entities"
)

// mockBookingAPI serves a fixed two-floor catalog for three buildings, with
// switches to break individual detail or availability calls.
type mockBookingAPI struct {
	failDetail       map[string]bool
	failAvailability map[string]bool
}

func (m *mockBookingAPI) SignIn(ctx context.Context, creds entities.Credentials) (string, error) {
	return "tok-1", nil
}

func (m *mockBookingAPI) ListBuildings(ctx context.Context, token string) ([]entities.BuildingItem, error) {
	var items []entities.BuildingItem
	for i := 1; i <= 3; i++ {
		items = append(items, entities.BuildingItem{
			Id:      fmt.Sprintf("b%d", i),
			Name:    fmt.Sprintf("Building %d", i),
			Company: entities.CompanyRef{Id: fmt.Sprintf("c%d", i)},
		})
	}
	return items, nil
}

func (m *mockBookingAPI) GetBuildingDetail(ctx context.Context, token, buildingId string) (*entities.BuildingDetail, error) {
	if m.failDetail[buildingId] {
		return nil, fmt.Errorf("detail fetch blew up for %s", buildingId)
	}
	detail := &entities.BuildingDetail{Id: buildingId}
	detail.Name = "Building " + buildingId[1:]
	detail.Company.Id = "c" + buildingId[1:]
	detail.Floors = []struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}{
		{Name: "Ground", Level: 0},
		{Name: "First", Level: 1},
	}
	return detail, nil
}

func (m *mockBookingAPI) GetWorkspaceAvailability(ctx context.Context, token, buildingId string, level int, startDate, endDate time.Time) ([]entities.AvailabilityItem, error) {
	key := fmt.Sprintf("%s/%d", buildingId, level)
	if m.failAvailability[key] {
		return nil, fmt.Errorf("availability fetch blew up for %s", key)
	}
	item := entities.AvailabilityItem{Id: fmt.Sprintf("%s-w%d", buildingId, level)}
	item.Workspace.Title = fmt.Sprintf("Workspace %s-%d", buildingId, level)
	item.Workspace.Seats = []entities.Seat{{Id: key + "/s1", Name: "A1"}}
	return []entities.AvailabilityItem{item}, nil
}

func (m *mockBookingAPI) SubmitOrder(ctx context.Context, token string, order entities.Order) (*entities.OrderResult, error) {
	return nil, fmt.Errorf("not used here")
}

func TestResolve_FullTree(t *testing.T) {
	r := NewResolver(4, &ResolverWorkingMaterial{Client: &mockBookingAPI{}})

	buildings, err := r.Resolve(context.Background(), "tok-1")

	assert.NoError(t, err)
	assert.Len(t, buildings, 3)
	// Output order matches the listing order regardless of completion order
	for i, b := range buildings {
		assert.Equal(t, fmt.Sprintf("b%d", i+1), b.Id)
		assert.Equal(t, fmt.Sprintf("c%d", i+1), b.CompanyId)
		assert.Len(t, b.Floors, 2)
		for fi, f := range b.Floors {
			assert.Equal(t, fi, f.Level)
			assert.Len(t, f.Workspace, 1)
			ws := f.Workspace[0]
			assert.Equal(t, fmt.Sprintf("%s-w%d", b.Id, f.Level), ws.Id)
			assert.Equal(t, b.CompanyId, ws.CompanyId)
			assert.Len(t, ws.Seats, 1)
		}
	}
}

func TestResolve_FailedDetailKeepsPlaceholder(t *testing.T) {
	api := &mockBookingAPI{failDetail: map[string]bool{"b2": true}}
	r := NewResolver(4, &ResolverWorkingMaterial{Client: api})

	buildings, err := r.Resolve(context.Background(), "tok-1")

	assert.NoError(t, err)
	assert.Len(t, buildings, 3)

	// The failed building stays, identifiable, with empty floors
	assert.Equal(t, "b2", buildings[1].Id)
	assert.Equal(t, "Building 2", buildings[1].Name)
	assert.Empty(t, buildings[1].Floors)

	// Its siblings are fully resolved
	assert.Len(t, buildings[0].Floors, 2)
	assert.Len(t, buildings[2].Floors, 2)
	assert.Len(t, buildings[0].Floors[0].Workspace, 1)
}

func TestResolve_FailedFloorKeepsEmptyWorkspaceList(t *testing.T) {
	api := &mockBookingAPI{failAvailability: map[string]bool{"b1/1": true}}
	r := NewResolver(4, &ResolverWorkingMaterial{Client: api})

	buildings, err := r.Resolve(context.Background(), "tok-1")

	assert.NoError(t, err)
	assert.Empty(t, buildings[0].Floors[1].Workspace)
	assert.Len(t, buildings[0].Floors[0].Workspace, 1)
	assert.Len(t, buildings[1].Floors[1].Workspace, 1)
}

type brokenListAPI struct {
	mockBookingAPI
}

func (b *brokenListAPI) ListBuildings(ctx context.Context, token string) ([]entities.BuildingItem, error) {
	return nil, fmt.Errorf("listing down")
}

func TestResolve_ListingFailureIsFatal(t *testing.T) {
	r := NewResolver(4, &ResolverWorkingMaterial{Client: &brokenListAPI{}})

	buildings, err := r.Resolve(context.Background(), "tok-1")

	assert.Error(t, err)
	assert.Nil(t, buildings)
}

func TestResolve_CancelledContextDiscardsResults(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := NewResolver(4, &ResolverWorkingMaterial{Client: &mockBookingAPI{}})

	buildings, err := r.Resolve(ctx, "tok-1")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, buildings)
}
