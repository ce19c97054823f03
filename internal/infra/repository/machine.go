package repository

import (
	"context"
	"encoding/json"
	"time"

	"machine-rental/internal/domain/machine"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type MachineRepository struct{}

func NewMachineRepository() commands.MachineRepository {
	return &MachineRepository{}
}

func (r *MachineRepository) Create(ctx context.Context, tx db.DBTX, m *machine.Machine) error {
	const query = `
		INSERT INTO machines (
			id, owner_id, name, code, description, category,
			price_per_hour_cents, specs, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	specs, err := json.Marshal(m.Specs())
	if err != nil {
		return infra.WrapRepoErr("failed to encode machine specs", err)
	}

	_, err = tx.Exec(ctx, query,
		m.ID(), m.OwnerID(), m.Name(), m.Code(), m.Description(), m.Category(),
		m.PricePerHourCents(), specs, m.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert machine", err)
	}
	return nil
}

func (r *MachineRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*machine.Machine, error) {
	const query = `
		SELECT id, owner_id, name, code, description, category,
		       price_per_hour_cents, specs, is_active, created_at, updated_at
		FROM machines
		WHERE id = $1`

	var (
		machineID uuid.UUID
		ownerID   uuid.UUID
		name      string
		code      string
		desc      string
		category  string
		cents     int64
		rawSpecs  []byte
		isActive  bool
		createdAt time.Time
		updatedAt time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(
		&machineID, &ownerID, &name, &code, &desc, &category,
		&cents, &rawSpecs, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find machine", err)
	}

	var specs machine.Specs
	if len(rawSpecs) > 0 {
		if err := json.Unmarshal(rawSpecs, &specs); err != nil {
			return nil, infra.WrapRepoErr("failed to decode machine specs", err)
		}
	}

	return machine.ReconstructMachine(
		machineID, ownerID, name, code, desc, category,
		cents, specs, isActive, createdAt, updatedAt,
	), nil
}

func (r *MachineRepository) Update(ctx context.Context, tx db.DBTX, m *machine.Machine) error {
	const query = `
		UPDATE machines
		SET name = $2, description = $3, category = $4,
		    price_per_hour_cents = $5, specs = $6, is_active = $7,
		    updated_at = now()
		WHERE id = $1`

	specs, err := json.Marshal(m.Specs())
	if err != nil {
		return infra.WrapRepoErr("failed to encode machine specs", err)
	}

	tag, err := tx.Exec(ctx, query,
		m.ID(), m.Name(), m.Description(), m.Category(),
		m.PricePerHourCents(), specs, m.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update machine", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "machine not found for update")
	}
	return nil
}

func (r *MachineRepository) CreateInstance(ctx context.Context, tx db.DBTX, inst *machine.Instance) error {
	const query = `
		INSERT INTO machine_instances (id, machine_id, instance_code, status)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, inst.ID(), inst.MachineID(), inst.InstanceCode(), string(inst.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to insert machine instance", err)
	}
	return nil
}

func (r *MachineRepository) FindInstanceByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*machine.Instance, error) {
	const query = `
		SELECT id, machine_id, instance_code, status, created_at, updated_at
		FROM machine_instances
		WHERE id = $1`

	var (
		instanceID uuid.UUID
		machineID  uuid.UUID
		code       string
		status     string
		createdAt  time.Time
		updatedAt  time.Time
	)
	err := tx.QueryRow(ctx, query, id).Scan(&instanceID, &machineID, &code, &status, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find machine instance", err)
	}

	return machine.ReconstructInstance(instanceID, machineID, code, machine.InstanceStatus(status), createdAt, updatedAt), nil
}

func (r *MachineRepository) UpdateInstance(ctx context.Context, tx db.DBTX, inst *machine.Instance) error {
	const query = `
		UPDATE machine_instances
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, inst.ID(), string(inst.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update machine instance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "machine instance not found for update")
	}
	return nil
}

func (r *MachineRepository) CountActiveInstances(ctx context.Context, tx db.DBTX, machineID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM machine_instances
		WHERE machine_id = $1 AND status = 'active'`

	var count int
	if err := tx.QueryRow(ctx, query, machineID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active instances", err)
	}
	return count, nil
}
