package service

import (
	"context"
	"sort"
	"time"

	"github.com/hance08/caja/internal/logic/projection"
	"github.com/hance08/caja/internal/model"
	"github.com/hance08/caja/internal/store"
)

type GoalService struct {
	base
}

// GoalReport is one goal box with its progress and completion estimate.
type GoalReport struct {
	Box        *model.Box
	Progress   float64
	Projection projection.Result
}

func (r *GoalReport) Met() bool {
	return r.Projection.Status == projection.StatusMet
}

type GoalOverview struct {
	Active     int
	OnTrack    int
	TotalSaved int64
}

// ProjectGoal estimates when an active goal box reaches its target. The
// box and its history are read in one atomic unit so both agree.
func (gs *GoalService) ProjectGoal(ctx context.Context, ownerID, boxID string, now time.Time) (*GoalReport, error) {
	var report *GoalReport

	err := gs.repo.ExecTx(ctx, func(repo store.Repository) error {
		box, err := activeBox(ctx, repo, ownerID, boxID)
		if err != nil {
			return err
		}
		if !box.IsGoal {
			return invalid("box", "box is not a savings goal")
		}

		report, err = goalReport(ctx, repo, ownerID, box, now)
		return err
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return report, nil
}

// ListGoals reports every active goal: unmet goals first by progress
// descending, met goals last.
func (gs *GoalService) ListGoals(ctx context.Context, ownerID string, now time.Time) ([]*GoalReport, error) {
	var reports []*GoalReport

	err := gs.repo.ExecTx(ctx, func(repo store.Repository) error {
		boxes, err := repo.ListBoxes(ctx, ownerID, store.BoxFilter{GoalsOnly: true})
		if err != nil {
			return storageErr(err)
		}

		for _, box := range boxes {
			report, err := goalReport(ctx, repo, ownerID, box, now)
			if err != nil {
				return err
			}
			reports = append(reports, report)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		a, b := reports[i], reports[j]
		if a.Met() != b.Met() {
			return !a.Met()
		}
		return a.Progress > b.Progress
	})

	return reports, nil
}

// Overview aggregates the active goals.
func (gs *GoalService) Overview(ctx context.Context, ownerID string) (*GoalOverview, error) {
	boxes, err := gs.repo.ListBoxes(ctx, ownerID, store.BoxFilter{GoalsOnly: true})
	if err != nil {
		return nil, storageErr(err)
	}

	overview := &GoalOverview{Active: len(boxes)}
	for _, box := range boxes {
		overview.TotalSaved += box.Balance
		if projection.Progress(box.Balance, box.Target()) >= projection.OnTrackPercent {
			overview.OnTrack++
		}
	}
	return overview, nil
}

func goalReport(ctx context.Context, repo store.Repository, ownerID string, box *model.Box, now time.Time) (*GoalReport, error) {
	history, err := repo.ListTransactions(ctx, ownerID, store.TransactionFilter{
		BoxID:     box.ID,
		Ascending: true,
	})
	if err != nil {
		return nil, storageErr(err)
	}

	return &GoalReport{
		Box:        box,
		Progress:   projection.Progress(box.Balance, box.Target()),
		Projection: projection.Project(history, box.Balance, box.Target(), now),
	}, nil
}
