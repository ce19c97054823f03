package request

type UpdateProfileRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zip_code,omitempty"`
	Image   *string `json:"image,omitempty"`
}
