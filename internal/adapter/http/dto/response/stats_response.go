package response

import "imobiliaria_xpto/internal/usecase"

type WindowStatsResponse struct {
	Count             int   `json:"count"`
	Completed         int   `json:"completed"`
	Cancelled         int   `json:"cancelled"`
	ClosedWithBalance int   `json:"closed_with_balance"`
	Volume            int64 `json:"volume"`
}

type PurchaseStatsResponse struct {
	WindowDays      int                 `json:"window_days"`
	Current         WindowStatsResponse `json:"current"`
	Previous        WindowStatsResponse `json:"previous"`
	CountGrowthPct  float64             `json:"count_growth_pct"`
	VolumeGrowthPct float64             `json:"volume_growth_pct"`
}

func FromPurchaseStats(s usecase.PurchaseStats) PurchaseStatsResponse {
	return PurchaseStatsResponse{
		WindowDays:      s.WindowDays,
		Current:         fromWindowStats(s.Current),
		Previous:        fromWindowStats(s.Previous),
		CountGrowthPct:  s.CountGrowthPct,
		VolumeGrowthPct: s.VolumeGrowthPct,
	}
}

func fromWindowStats(s usecase.WindowStats) WindowStatsResponse {
	return WindowStatsResponse{
		Count:             s.Count,
		Completed:         s.Completed,
		Cancelled:         s.Cancelled,
		ClosedWithBalance: s.ClosedWithBalance,
		Volume:            s.Volume,
	}
}
