package machine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Machine is a rentable listing (template). Physical units are tracked as
// Instances and scheduled individually.
type Machine struct {
	id                uuid.UUID
	ownerID           uuid.UUID
	name              string
	code              string
	description       string
	category          string
	pricePerHourCents int64
	specs             Specs
	isActive          bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewMachine(
	ownerID uuid.UUID,
	name, code, description, category string,
	pricePerHourCents int64,
	specs Specs,
) (*Machine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if pricePerHourCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Machine{
		id:                uuid.New(),
		ownerID:           ownerID,
		name:              name,
		code:              code,
		description:       strings.TrimSpace(description),
		category:          category,
		pricePerHourCents: pricePerHourCents,
		specs:             specs.Normalize(),
		isActive:          true,
	}, nil
}

func ReconstructMachine(
	id, ownerID uuid.UUID,
	name, code, description, category string,
	pricePerHourCents int64,
	specs Specs,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Machine {
	return &Machine{
		id:                id,
		ownerID:           ownerID,
		name:              name,
		code:              code,
		description:       description,
		category:          category,
		pricePerHourCents: pricePerHourCents,
		specs:             specs,
		isActive:          isActive,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Patch applies a partial update. Nil fields are left untouched; code and
// owner are immutable.
func (m *Machine) Patch(name, description, category *string, pricePerHourCents *int64, specs *Specs, isActive *bool) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		m.name = trimmed
	}
	if description != nil {
		m.description = strings.TrimSpace(*description)
	}
	if category != nil {
		trimmed := strings.TrimSpace(*category)
		if trimmed == "" {
			return ErrEmptyCategory
		}
		m.category = trimmed
	}
	if pricePerHourCents != nil {
		if *pricePerHourCents < 0 {
			return ErrNegativePrice
		}
		m.pricePerHourCents = *pricePerHourCents
	}
	if specs != nil {
		m.specs = specs.Normalize()
	}
	if isActive != nil {
		m.isActive = *isActive
	}
	return nil
}

func (m *Machine) IsOwnedBy(userID uuid.UUID) bool {
	return m.ownerID == userID
}

func (m *Machine) ID() uuid.UUID           { return m.id }
func (m *Machine) OwnerID() uuid.UUID      { return m.ownerID }
func (m *Machine) Name() string            { return m.name }
func (m *Machine) Code() string            { return m.code }
func (m *Machine) Description() string     { return m.description }
func (m *Machine) Category() string        { return m.category }
func (m *Machine) PricePerHourCents() int64 { return m.pricePerHourCents }
func (m *Machine) Specs() Specs            { return m.specs }
func (m *Machine) IsActive() bool          { return m.isActive }
func (m *Machine) CreatedAt() time.Time    { return m.createdAt }
func (m *Machine) UpdatedAt() time.Time    { return m.updatedAt }

// Instance is a concrete, schedulable unit of a machine template.
type Instance struct {
	id           uuid.UUID
	machineID    uuid.UUID
	instanceCode string
	status       InstanceStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewInstance(machineID uuid.UUID, instanceCode string) (*Instance, error) {
	instanceCode = strings.TrimSpace(instanceCode)
	if instanceCode == "" {
		return nil, ErrEmptyInstanceCode
	}

	return &Instance{
		id:           uuid.New(),
		machineID:    machineID,
		instanceCode: instanceCode,
		status:       InstanceActive,
	}, nil
}

func ReconstructInstance(id, machineID uuid.UUID, instanceCode string, status InstanceStatus, createdAt, updatedAt time.Time) *Instance {
	return &Instance{
		id:           id,
		machineID:    machineID,
		instanceCode: instanceCode,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (i *Instance) SetStatus(status InstanceStatus) error {
	if !status.IsValid() {
		return ErrInvalidInstanceStatus
	}
	i.status = status
	return nil
}

func (i *Instance) IsSchedulable() bool {
	return i.status == InstanceActive
}

func (i *Instance) ID() uuid.UUID          { return i.id }
func (i *Instance) MachineID() uuid.UUID   { return i.machineID }
func (i *Instance) InstanceCode() string   { return i.instanceCode }
func (i *Instance) Status() InstanceStatus { return i.status }
func (i *Instance) CreatedAt() time.Time   { return i.createdAt }
func (i *Instance) UpdatedAt() time.Time   { return i.updatedAt }
