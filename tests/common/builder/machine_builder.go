//go:build unit || e2e

package builder

import (
	"time"

	"machine-rental/internal/domain/machine"
	reqdto "machine-rental/internal/handler/dto/request"
	"machine-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MachineBuilder struct {
	ID                uuid.UUID
	OwnerID           uuid.UUID
	OwnerName         string
	Name              string
	Code              string
	Description       string
	Category          string
	PricePerHourCents int64
	ActiveInstances   int
	TotalInstances    int
	IsActive          bool
}

func NewMachineBuilder() *MachineBuilder {
	return &MachineBuilder{
		ID:                uuid.New(),
		OwnerID:           uuid.New(),
		OwnerName:         "Test Owner",
		Name:              "Mini Excavator",
		Code:              "EXC-001",
		Description:       "3.5t mini excavator",
		Category:          "excavator",
		PricePerHourCents: 12500,
		ActiveInstances:   2,
		TotalInstances:    3,
		IsActive:          true,
	}
}

func (m *MachineBuilder) With(mutate func(*MachineBuilder)) *MachineBuilder {
	mutate(m)
	return m
}

func (m *MachineBuilder) WithOwner(ownerID uuid.UUID) *MachineBuilder {
	m.OwnerID = ownerID
	return m
}

func (m *MachineBuilder) WithActiveInstances(active, total int) *MachineBuilder {
	m.ActiveInstances = active
	m.TotalInstances = total
	return m
}

func (m *MachineBuilder) AsInactive() *MachineBuilder {
	m.IsActive = false
	return m
}

func (m *MachineBuilder) BuildDomain() (*machine.Machine, error) {
	return machine.NewMachine(m.OwnerID, m.Name, m.Code, m.Description, m.Category, m.PricePerHourCents, machine.Specs{})
}

func (m *MachineBuilder) BuildCreateDTO() reqdto.CreateMachineRequest {
	return reqdto.CreateMachineRequest{
		Name:              m.Name,
		Code:              m.Code,
		Description:       m.Description,
		Category:          m.Category,
		PricePerHourCents: m.PricePerHourCents,
	}
}

func (m *MachineBuilder) BuildView() *queries.MachineView {
	now := time.Now()
	return &queries.MachineView{
		ID:                m.ID,
		OwnerID:           m.OwnerID,
		OwnerName:         m.OwnerName,
		Name:              m.Name,
		Code:              m.Code,
		Description:       m.Description,
		Category:          m.Category,
		PricePerHourCents: m.PricePerHourCents,
		Stats: queries.MachineStats{
			InstanceCount:       m.TotalInstances,
			ActiveInstanceCount: m.ActiveInstances,
		},
		IsActive:  m.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BuildListItem derives the list row from the full view; overlapping fields are copied by name.
func (m *MachineBuilder) BuildListItem() queries.MachineListItem {
	var item queries.MachineListItem
	_ = copier.Copy(&item, m.BuildView())
	item.ActiveInstances = m.ActiveInstances
	item.TotalInstances = m.TotalInstances
	return item
}
