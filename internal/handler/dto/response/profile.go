package response

import (
	"machine-rental/internal/usecase/queries"
)

type ProfileResponse struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
	Image   *string `json:"image,omitempty"`
}

func FromProfileView(view *queries.ProfileView) *ProfileResponse {
	return &ProfileResponse{
		Name:    view.Name,
		Email:   view.Email,
		Phone:   view.Phone,
		Address: view.Address,
		City:    view.City,
		State:   view.State,
		ZipCode: view.ZipCode,
		Image:   view.Image,
	}
}
