package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/paologalligit/moffi-booker/client"
	"github.com/paologalligit/moffi-booker/entities"
	"github.com/paologalligit/moffi-booker/team"
	"github.com/paologalligit/moffi-booker/utils"
)

type ResolverWorkingMaterial struct {
	Client       client.BookingAPI
	RequestDelay int
	Completed    *int64
	ShowProgress bool
	Logger       *zap.Logger
}

// Resolver turns the remote service's paginated-by-call catalog into the full
// Building -> Floor -> Workspace -> Seat tree. Fan-out stages run their
// sub-calls concurrently purely for latency hiding: the final tree is
// deterministic and keeps the order the buildings were listed in.
type Resolver struct {
	WorkerCount     int
	WorkingMaterial *ResolverWorkingMaterial
}

func NewResolver(workerCount int, wm *ResolverWorkingMaterial) *Resolver {
	if wm.Logger == nil {
		wm.Logger = zap.NewNop()
	}
	return &Resolver{
		WorkerCount:     workerCount,
		WorkingMaterial: wm,
	}
}

// Resolve runs the three stages. Only the initial listing is fatal: a building
// whose detail fetch fails stays in the catalog with empty floors, a floor
// whose availability fetch fails keeps an empty workspace list. One bad item
// never blocks its siblings.
func (r *Resolver) Resolve(ctx context.Context, token string) ([]entities.Building, error) {
	wm := r.WorkingMaterial

	// Stage A: one call, minimal records
	items, err := wm.Client.ListBuildings(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error listing buildings: %w", err)
	}
	buildings := make([]entities.Building, len(items))
	for i, item := range items {
		buildings[i] = entities.Building{
			Id:        item.Id,
			Name:      item.Name,
			CompanyId: item.Company.Id,
		}
	}
	wm.Logger.Info("buildings listed", zap.Int("count", len(buildings)))

	// Stage B: concurrent detail fetch, one job per building
	detailTeam := team.Team[entities.Building, entities.Building]{
		WorkerCount: r.WorkerCount,
		Worker: func(ctx context.Context, b entities.Building) (entities.Building, error) {
			detail, err := wm.Client.GetBuildingDetail(ctx, token, b.Id)
			if err != nil || detail == nil {
				wm.Logger.Warn("building detail unavailable, keeping placeholder",
					zap.String("buildingId", b.Id), zap.Error(err))
				return b, nil
			}
			resolved := entities.Building{
				Id:        detail.Id,
				Name:      detail.Name,
				CompanyId: detail.Company.Id,
				Floors:    make([]entities.Floor, len(detail.Floors)),
			}
			for i, f := range detail.Floors {
				resolved.Floors[i] = entities.Floor{Name: f.Name, Level: f.Level}
			}
			return resolved, nil
		},
	}
	buildings = detailTeam.Run(ctx, buildings)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage C: concurrent availability fetch, one job per (building, floor)
	type floorJob struct {
		building int
		floor    int
	}
	var jobs []floorJob
	for bi := range buildings {
		for fi := range buildings[bi].Floors {
			jobs = append(jobs, floorJob{building: bi, floor: fi})
		}
	}
	if wm.ShowProgress && len(jobs) > 0 {
		if wm.Completed == nil {
			wm.Completed = new(int64)
		}
		stopProgress := make(chan struct{})
		go utils.ReportProgress(wm.Completed, int64(len(jobs)), stopProgress)
		defer close(stopProgress)
	}
	availabilityTeam := team.Team[floorJob, []entities.Workspace]{
		WorkerCount: r.WorkerCount,
		Worker: func(ctx context.Context, job floorJob) ([]entities.Workspace, error) {
			building := buildings[job.building]
			floor := building.Floors[job.floor]
			if wm.Completed != nil {
				defer atomic.AddInt64(wm.Completed, 1)
			}
			if wm.RequestDelay > 0 {
				defer time.Sleep(time.Duration(wm.RequestDelay) * time.Millisecond)
			}
			items, err := wm.Client.GetWorkspaceAvailability(ctx, token, building.Id, floor.Level, time.Time{}, time.Time{})
			if err != nil {
				wm.Logger.Warn("availability unavailable, keeping floor empty",
					zap.String("buildingId", building.Id),
					zap.Int("floor", floor.Level), zap.Error(err))
				return nil, nil
			}
			workspaces := make([]entities.Workspace, len(items))
			for i, item := range items {
				workspaces[i] = entities.Workspace{
					Id:        item.Id,
					Name:      item.Workspace.Title,
					CompanyId: building.CompanyId,
					Seats:     item.Workspace.Seats,
				}
			}
			return workspaces, nil
		},
	}
	workspacesByJob := availabilityTeam.Run(ctx, jobs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, job := range jobs {
		buildings[job.building].Floors[job.floor].Workspace = workspacesByJob[i]
	}
	wm.Logger.Info("catalog resolved",
		zap.Int("buildings", len(buildings)), zap.Int("floors", len(jobs)))
	return buildings, nil
}
