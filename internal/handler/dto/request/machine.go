package request

type MachineSpecs struct {
	Images     []string `json:"images,omitempty"`
	Gallery    []string `json:"gallery,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Location   *string  `json:"location,omitempty"`
}

type CreateMachineRequest struct {
	Name              string       `json:"name" binding:"required"`
	Code              string       `json:"code" binding:"required"`
	Description       string       `json:"description"`
	Category          string       `json:"category" binding:"required"`
	PricePerHourCents int64        `json:"price_per_hour_cents" binding:"min=0"`
	Specs             MachineSpecs `json:"specs"`
}

type UpdateMachineRequest struct {
	Name              *string       `json:"name,omitempty"`
	Description       *string       `json:"description,omitempty"`
	Category          *string       `json:"category,omitempty"`
	PricePerHourCents *int64        `json:"price_per_hour_cents,omitempty" binding:"omitempty,min=0"`
	Specs             *MachineSpecs `json:"specs,omitempty"`
	IsActive          *bool         `json:"is_active,omitempty"`
}

type CreateInstanceRequest struct {
	InstanceCode string `json:"instance_code" binding:"required"`
}

type UpdateInstanceRequest struct {
	Status string `json:"status" binding:"required,oneof=active maintenance retired"`
}
