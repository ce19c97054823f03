package response

import (
	"time"

	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
)

type MachineSpecsResponse struct {
	Images     []string `json:"images,omitempty"`
	Gallery    []string `json:"gallery,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Location   *string  `json:"location,omitempty"`
}

type MachineStatsResponse struct {
	InstanceCount       int `json:"instanceCount"`
	ActiveInstanceCount int `json:"activeInstanceCount"`
	BookingCount        int `json:"bookingCount"`
}

type MachineResponse struct {
	ID                uuid.UUID            `json:"id"`
	OwnerID           uuid.UUID            `json:"ownerId"`
	OwnerName         string               `json:"ownerName"`
	Name              string               `json:"name"`
	Code              string               `json:"code"`
	Description       string               `json:"description"`
	Category          string               `json:"category"`
	PricePerHourCents int64                `json:"pricePerHourCents"`
	Specs             MachineSpecsResponse `json:"specs"`
	AverageRating     *float64             `json:"averageRating,omitempty"`
	Stats             MachineStatsResponse `json:"stats"`
	IsActive          bool                 `json:"isActive"`
	CreatedAt         time.Time            `json:"createdAt"`
	UpdatedAt         time.Time            `json:"updatedAt"`
}

type MachineListResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	Category          string    `json:"category"`
	PricePerHourCents int64     `json:"pricePerHourCents"`
	AverageRating     *float64  `json:"averageRating,omitempty"`
	ActiveInstances   int       `json:"activeInstances"`
	TotalInstances    int       `json:"totalInstances"`
}

type AvailabilityResponse struct {
	Available      bool    `json:"available"`
	AvailableCount int     `json:"availableCount"`
	TotalCostCents int64   `json:"totalCostCents"`
	Reason         *string `json:"reason,omitempty"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromMachineView(view *queries.MachineView) *MachineResponse {
	return &MachineResponse{
		ID:                view.ID,
		OwnerID:           view.OwnerID,
		OwnerName:         view.OwnerName,
		Name:              view.Name,
		Code:              view.Code,
		Description:       view.Description,
		Category:          view.Category,
		PricePerHourCents: view.PricePerHourCents,
		Specs: MachineSpecsResponse{
			Images:     view.Specs.Images,
			Gallery:    view.Specs.Gallery,
			Highlights: view.Specs.Highlights,
			Location:   view.Specs.Location,
		},
		AverageRating: view.AverageRating,
		Stats: MachineStatsResponse{
			InstanceCount:       view.Stats.InstanceCount,
			ActiveInstanceCount: view.Stats.ActiveInstanceCount,
			BookingCount:        view.Stats.BookingCount,
		},
		IsActive:  view.IsActive,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromMachineListItem(item *queries.MachineListItem) *MachineListResponse {
	return &MachineListResponse{
		ID:                item.ID,
		Name:              item.Name,
		Code:              item.Code,
		Category:          item.Category,
		PricePerHourCents: item.PricePerHourCents,
		AverageRating:     item.AverageRating,
		ActiveInstances:   item.ActiveInstances,
		TotalInstances:    item.TotalInstances,
	}
}

func FromAvailability(result *queries.AvailabilityResult) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available:      result.Available,
		AvailableCount: result.AvailableCount,
		TotalCostCents: result.TotalCostCents,
		Reason:         result.Reason,
	}
}
