package response

import (
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type DashboardTotalsResponse struct {
	TotalMachines     int   `json:"totalMachines"`
	ActiveBookings    int   `json:"activeBookings"`
	PendingBookings   int   `json:"pendingBookings"`
	TotalRevenueCents int64 `json:"totalRevenueCents"`
}

type RevenueBucketResponse struct {
	Label        string `json:"label"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	RevenueCents int64  `json:"revenueCents"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Ratio  int    `json:"ratio"`
}

type UtilizationResponse struct {
	MachineID uuid.UUID `json:"machineId"`
	Name      string    `json:"name"`
	Ratio     float64   `json:"ratio"`
}

type DashboardResponse struct {
	Totals      DashboardTotalsResponse `json:"totals"`
	Revenue     []RevenueBucketResponse `json:"revenue"`
	StatusMix   []StatusCountResponse   `json:"statusMix"`
	Utilization []UtilizationResponse   `json:"utilization"`
}

func FromDashboardView(view *queries.DashboardView) *DashboardResponse {
	resp := &DashboardResponse{
		Totals: DashboardTotalsResponse{
			TotalMachines:     view.Totals.TotalMachines,
			ActiveBookings:    view.Totals.ActiveBookings,
			PendingBookings:   view.Totals.PendingBookings,
			TotalRevenueCents: view.Totals.TotalRevenueCents,
		},
		Revenue:     make([]RevenueBucketResponse, 0, len(view.Revenue)),
		StatusMix:   make([]StatusCountResponse, 0, len(view.StatusMix)),
		Utilization: make([]UtilizationResponse, 0, len(view.Utilization)),
	}

	for _, b := range view.Revenue {
		resp.Revenue = append(resp.Revenue, RevenueBucketResponse{
			Label:        b.Label,
			Year:         b.Year,
			Month:        int(b.Month),
			RevenueCents: b.RevenueCents,
		})
	}
	for _, s := range view.StatusMix {
		resp.StatusMix = append(resp.StatusMix, StatusCountResponse{
			Status: s.Status.String(),
			Count:  s.Count,
			Ratio:  s.Ratio,
		})
	}
	for _, u := range view.Utilization {
		resp.Utilization = append(resp.Utilization, UtilizationResponse{
			MachineID: u.MachineID,
			Name:      u.Name,
			Ratio:     u.Ratio,
		})
	}
	return resp
}
