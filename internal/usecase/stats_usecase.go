package usecase

import (
	"context"
	"errors"
	"time"

	"imobiliaria_xpto/internal/domain/entities"
	"imobiliaria_xpto/internal/usecase/interfaces"
)

var ErrInvalidStatsWindow = errors.New("invalid stats window")

const (
	defaultStatsWindowDays = 30
	maxStatsWindowDays     = 365
)

// WindowStats aggregates the purchases created inside one time window.
// Volume is the summed total amount in minor units; mixing currencies in one
// report is tolerated here since this is an operational dashboard figure.
type WindowStats struct {
	Count             int   `json:"count"`
	Completed         int   `json:"completed"`
	Cancelled         int   `json:"cancelled"`
	ClosedWithBalance int   `json:"closed_with_balance"`
	Volume            int64 `json:"volume"`
}

// PurchaseStats compares the current window against the previous one of the
// same length, the growth figures the marketplace dashboard renders.
type PurchaseStats struct {
	WindowDays      int         `json:"window_days"`
	Current         WindowStats `json:"current"`
	Previous        WindowStats `json:"previous"`
	CountGrowthPct  float64     `json:"count_growth_pct"`
	VolumeGrowthPct float64     `json:"volume_growth_pct"`
}

type IStatsUseCase interface {
	PurchaseGrowth(ctx context.Context, windowDays int) (PurchaseStats, error)
}

type StatsUseCase struct {
	repo interfaces.IPurchaseRepository
	now  func() time.Time
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(repo interfaces.IPurchaseRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// PurchaseGrowth computes count/volume aggregates for the last windowDays and
// the windowDays before that, plus the percentage change between the two.
func (u *StatsUseCase) PurchaseGrowth(ctx context.Context, windowDays int) (PurchaseStats, error) {
	if windowDays == 0 {
		windowDays = defaultStatsWindowDays
	}
	if windowDays < 0 || windowDays > maxStatsWindowDays {
		return PurchaseStats{}, ErrInvalidStatsWindow
	}

	now := u.now()
	windowStart := now.AddDate(0, 0, -windowDays)
	previousStart := windowStart.AddDate(0, 0, -windowDays)
	// The store filters with an inclusive range, so the previous window stops
	// one nanosecond short of windowStart to keep a purchase created exactly on
	// the boundary out of both windows.
	previousEnd := windowStart.Add(-time.Nanosecond)

	current, err := u.windowStats(ctx, windowStart, now)
	if err != nil {
		return PurchaseStats{}, err
	}
	previous, err := u.windowStats(ctx, previousStart, previousEnd)
	if err != nil {
		return PurchaseStats{}, err
	}

	return PurchaseStats{
		WindowDays:      windowDays,
		Current:         current,
		Previous:        previous,
		CountGrowthPct:  growthPct(float64(previous.Count), float64(current.Count)),
		VolumeGrowthPct: growthPct(float64(previous.Volume), float64(current.Volume)),
	}, nil
}

func (u *StatsUseCase) windowStats(ctx context.Context, from, to time.Time) (WindowStats, error) {
	purchases, err := u.repo.ListCreatedBetween(ctx, from, to)
	if err != nil {
		return WindowStats{}, err
	}

	var s WindowStats
	for _, p := range purchases {
		s.Count++
		s.Volume += p.TotalAmount.Amount
		switch p.Status {
		case entities.PurchaseStatusCompleted:
			s.Completed++
		case entities.PurchaseStatusCancelled:
			s.Cancelled++
		}
		if p.ClosedWithBalance {
			s.ClosedWithBalance++
		}
	}
	return s, nil
}

// growthPct follows the dashboard convention: growth from zero is 100% when the
// current window has activity, 0% when both windows are empty.
func growthPct(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}
