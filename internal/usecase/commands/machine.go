package commands

import (
	"context"

	"machine-rental/internal/domain/machine"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrDuplicateMachineCode  = errs.New("machine code already exists for this owner")
	ErrDuplicateInstanceCode = errs.New("instance code already exists for this machine")
	ErrInstanceNotFound      = errs.New("machine instance not found")
)

type CreateMachineParams struct {
	Name              string
	Code              string
	Description       string
	Category          string
	PricePerHourCents int64
	Specs             machine.Specs
}

type UpdateMachineParams struct {
	MachineID         uuid.UUID
	Name              *string
	Description       *string
	Category          *string
	PricePerHourCents *int64
	Specs             *machine.Specs
	IsActive          *bool
}

type CreateInstanceParams struct {
	MachineID    uuid.UUID
	InstanceCode string
}

type UpdateInstanceParams struct {
	MachineID  uuid.UUID
	InstanceID uuid.UUID
	Status     machine.InstanceStatus
}

type MachineCommands interface {
	CreateMachine(ctx context.Context, ownerID uuid.UUID, params CreateMachineParams) (uuid.UUID, error)
	UpdateMachine(ctx context.Context, ownerID uuid.UUID, params UpdateMachineParams) error
	AddInstance(ctx context.Context, ownerID uuid.UUID, params CreateInstanceParams) (uuid.UUID, error)
	UpdateInstanceStatus(ctx context.Context, ownerID uuid.UUID, params UpdateInstanceParams) error
}

type machineCommands struct {
	uow      UnitOfWork
	machines MachineRepository
	catalog  CatalogInvalidator
}

func NewMachineCommands(uow UnitOfWork, machines MachineRepository, catalog CatalogInvalidator) MachineCommands {
	return &machineCommands{uow: uow, machines: machines, catalog: catalog}
}

func (c *machineCommands) CreateMachine(ctx context.Context, ownerID uuid.UUID, params CreateMachineParams) (uuid.UUID, error) {
	m, err := machine.NewMachine(ownerID, params.Name, params.Code, params.Description, params.Category, params.PricePerHourCents, params.Specs)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.machines.Create(ctx, tx, m); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateMachineCode)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.catalog.InvalidateCatalog(ctx)
	return m.ID(), nil
}

func (c *machineCommands) UpdateMachine(ctx context.Context, ownerID uuid.UUID, params UpdateMachineParams) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		m, err := c.loadOwned(ctx, tx, params.MachineID, ownerID)
		if err != nil {
			return err
		}
		if err := m.Patch(params.Name, params.Description, params.Category, params.PricePerHourCents, params.Specs, params.IsActive); err != nil {
			return err
		}
		return c.machines.Update(ctx, tx, m)
	})
	if err != nil {
		return err
	}

	c.catalog.InvalidateCatalog(ctx)
	return nil
}

func (c *machineCommands) AddInstance(ctx context.Context, ownerID uuid.UUID, params CreateInstanceParams) (uuid.UUID, error) {
	inst, err := machine.NewInstance(params.MachineID, params.InstanceCode)
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := c.loadOwned(ctx, tx, params.MachineID, ownerID); err != nil {
			return err
		}
		if err := c.machines.CreateInstance(ctx, tx, inst); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateInstanceCode)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	c.catalog.InvalidateCatalog(ctx)
	return inst.ID(), nil
}

func (c *machineCommands) UpdateInstanceStatus(ctx context.Context, ownerID uuid.UUID, params UpdateInstanceParams) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := c.loadOwned(ctx, tx, params.MachineID, ownerID); err != nil {
			return err
		}
		inst, err := c.machines.FindInstanceByID(ctx, tx, params.InstanceID)
		if err != nil {
			return markNotFound(err, ErrInstanceNotFound)
		}
		if inst.MachineID() != params.MachineID {
			return ErrInstanceNotFound
		}
		if err := inst.SetStatus(params.Status); err != nil {
			return err
		}
		return c.machines.UpdateInstance(ctx, tx, inst)
	})
	if err != nil {
		return err
	}

	c.catalog.InvalidateCatalog(ctx)
	return nil
}

func (c *machineCommands) loadOwned(ctx context.Context, tx db.DBTX, machineID, ownerID uuid.UUID) (*machine.Machine, error) {
	m, err := c.machines.FindByID(ctx, tx, machineID)
	if err != nil {
		return nil, markNotFound(err, ErrMachineNotFound)
	}
	if !m.IsOwnedBy(ownerID) {
		return nil, ErrNotMachineOwner
	}
	return m, nil
}
