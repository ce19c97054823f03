//go:build unit

package commands_test

import (
	"context"
	"testing"

	"machine-rental/internal/domain/machine"
	"machine-rental/internal/infra"
	"machine-rental/internal/infra/db"
	"machine-rental/internal/pkg/ptr"
	"machine-rental/internal/usecase/commands"
	commandsmock "machine-rental/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MachineCommandsTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUoW         *commandsmock.MockUnitOfWork
	mockMachines    *commandsmock.MockMachineRepository
	mockInvalidator *commandsmock.MockCatalogInvalidator
	commands        commands.MachineCommands
	ownerID         uuid.UUID
}

func (s *MachineCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = commandsmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockMachines = commandsmock.NewMockMachineRepository(s.mockCtrl)
	s.mockInvalidator = commandsmock.NewMockCatalogInvalidator(s.mockCtrl)
	s.commands = commands.NewMachineCommands(s.mockUoW, s.mockMachines, s.mockInvalidator)
	s.ownerID = uuid.New()

	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		}).AnyTimes()
}

func (s *MachineCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMachineCommandsSuite(t *testing.T) {
	suite.Run(t, new(MachineCommandsTestSuite))
}

func (s *MachineCommandsTestSuite) ownedMachine() *machine.Machine {
	m, err := machine.NewMachine(s.ownerID, "Mini Excavator", "EXC-001", "3.5t mini excavator", "excavator", 12500, machine.Specs{})
	s.Require().NoError(err)
	return m
}

func (s *MachineCommandsTestSuite) createParams() commands.CreateMachineParams {
	return commands.CreateMachineParams{
		Name:              "Tower Crane",
		Code:              "CRN-010",
		Description:       "40m tower crane",
		Category:          "crane",
		PricePerHourCents: 45000,
	}
}

func (s *MachineCommandsTestSuite) TestCreateMachine() {
	ctx := context.Background()

	s.Run("success: persists the listing and invalidates the catalog", func() {
		s.mockMachines.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, m *machine.Machine) error {
				s.Equal(s.ownerID, m.OwnerID())
				s.Equal("CRN-010", m.Code())
				s.True(m.IsActive())
				return nil
			}).Times(1)
		s.mockInvalidator.EXPECT().InvalidateCatalog(ctx).Times(1)

		id, err := s.commands.CreateMachine(ctx, s.ownerID, s.createParams())
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("duplicate code for the same owner", func() {
		s.mockMachines.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindDuplicateKey, "machines_owner_id_code_key")).Times(1)

		_, err := s.commands.CreateMachine(ctx, s.ownerID, s.createParams())
		s.ErrorIs(err, commands.ErrDuplicateMachineCode)
	})

	s.Run("invalid listings never reach the repository", func() {
		params := s.createParams()
		params.Name = "  "
		_, err := s.commands.CreateMachine(ctx, s.ownerID, params)
		s.ErrorIs(err, machine.ErrEmptyName)

		params = s.createParams()
		params.PricePerHourCents = -1
		_, err = s.commands.CreateMachine(ctx, s.ownerID, params)
		s.ErrorIs(err, machine.ErrNegativePrice)
	})
}

func (s *MachineCommandsTestSuite) TestUpdateMachine() {
	ctx := context.Background()

	s.Run("success: patches the listing and invalidates the catalog", func() {
		m := s.ownedMachine()
		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), m.ID()).Return(m, nil).Times(1)
		s.mockMachines.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, updated *machine.Machine) error {
				s.Equal("Midi Excavator", updated.Name())
				s.EqualValues(15000, updated.PricePerHourCents())
				s.False(updated.IsActive())
				return nil
			}).Times(1)
		s.mockInvalidator.EXPECT().InvalidateCatalog(ctx).Times(1)

		err := s.commands.UpdateMachine(ctx, s.ownerID, commands.UpdateMachineParams{
			MachineID:         m.ID(),
			Name:              ptr.To("Midi Excavator"),
			PricePerHourCents: ptr.To(int64(15000)),
			IsActive:          ptr.To(false),
		})
		s.NoError(err)
	})

	s.Run("someone else's machine cannot be patched", func() {
		m := s.ownedMachine()
		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), m.ID()).Return(m, nil).Times(1)

		err := s.commands.UpdateMachine(ctx, uuid.New(), commands.UpdateMachineParams{
			MachineID: m.ID(),
			Name:      ptr.To("Hijacked"),
		})
		s.ErrorIs(err, commands.ErrNotMachineOwner)
	})

	s.Run("unknown machine", func() {
		machineID := uuid.New()
		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), machineID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "machine not found")).Times(1)

		err := s.commands.UpdateMachine(ctx, s.ownerID, commands.UpdateMachineParams{
			MachineID: machineID,
			Name:      ptr.To("Ghost"),
		})
		s.ErrorIs(err, commands.ErrMachineNotFound)
	})
}

func (s *MachineCommandsTestSuite) TestAddInstance() {
	ctx := context.Background()

	s.Run("success: adds a unit and invalidates the catalog", func() {
		m := s.ownedMachine()
		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), m.ID()).Return(m, nil).Times(1)
		s.mockMachines.EXPECT().CreateInstance(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, inst *machine.Instance) error {
				s.Equal(m.ID(), inst.MachineID())
				s.Equal(machine.InstanceActive, inst.Status())
				return nil
			}).Times(1)
		s.mockInvalidator.EXPECT().InvalidateCatalog(ctx).Times(1)

		id, err := s.commands.AddInstance(ctx, s.ownerID, commands.CreateInstanceParams{
			MachineID:    m.ID(),
			InstanceCode: "EXC-001-B",
		})
		s.Require().NoError(err)
		s.NotEqual(uuid.Nil, id)
	})

	s.Run("duplicate unit code on the same machine", func() {
		m := s.ownedMachine()
		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), m.ID()).Return(m, nil).Times(1)
		s.mockMachines.EXPECT().CreateInstance(ctx, gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindDuplicateKey, "machine_instances_machine_id_instance_code_key")).Times(1)

		_, err := s.commands.AddInstance(ctx, s.ownerID, commands.CreateInstanceParams{
			MachineID:    m.ID(),
			InstanceCode: "EXC-001-A",
		})
		s.ErrorIs(err, commands.ErrDuplicateInstanceCode)
	})

	s.Run("blank unit code", func() {
		_, err := s.commands.AddInstance(ctx, s.ownerID, commands.CreateInstanceParams{
			MachineID:    uuid.New(),
			InstanceCode: "  ",
		})
		s.ErrorIs(err, machine.ErrEmptyInstanceCode)
	})
}

func (s *MachineCommandsTestSuite) TestUpdateInstanceStatus() {
	ctx := context.Background()

	s.Run("success: retires a unit and invalidates the catalog", func() {
		m := s.ownedMachine()
		inst, err := machine.NewInstance(m.ID(), "EXC-001-A")
		s.Require().NoError(err)

		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), m.ID()).Return(m, nil).Times(1)
		s.mockMachines.EXPECT().FindInstanceByID(ctx, gomock.Any(), inst.ID()).Return(inst, nil).Times(1)
		s.mockMachines.EXPECT().UpdateInstance(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, updated *machine.Instance) error {
				s.Equal(machine.InstanceRetired, updated.Status())
				return nil
			}).Times(1)
		s.mockInvalidator.EXPECT().InvalidateCatalog(ctx).Times(1)

		err = s.commands.UpdateInstanceStatus(ctx, s.ownerID, commands.UpdateInstanceParams{
			MachineID:  m.ID(),
			InstanceID: inst.ID(),
			Status:     machine.InstanceRetired,
		})
		s.NoError(err)
	})

	s.Run("a unit hanging off another machine reads as missing", func() {
		m := s.ownedMachine()
		foreign, err := machine.NewInstance(uuid.New(), "OTHER-001-A")
		s.Require().NoError(err)

		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), m.ID()).Return(m, nil).Times(1)
		s.mockMachines.EXPECT().FindInstanceByID(ctx, gomock.Any(), foreign.ID()).Return(foreign, nil).Times(1)

		err = s.commands.UpdateInstanceStatus(ctx, s.ownerID, commands.UpdateInstanceParams{
			MachineID:  m.ID(),
			InstanceID: foreign.ID(),
			Status:     machine.InstanceMaintenance,
		})
		s.ErrorIs(err, commands.ErrInstanceNotFound)
	})

	s.Run("unknown status", func() {
		m := s.ownedMachine()
		inst, err := machine.NewInstance(m.ID(), "EXC-001-A")
		s.Require().NoError(err)

		s.mockMachines.EXPECT().FindByID(ctx, gomock.Any(), m.ID()).Return(m, nil).Times(1)
		s.mockMachines.EXPECT().FindInstanceByID(ctx, gomock.Any(), inst.ID()).Return(inst, nil).Times(1)

		err = s.commands.UpdateInstanceStatus(ctx, s.ownerID, commands.UpdateInstanceParams{
			MachineID:  m.ID(),
			InstanceID: inst.ID(),
			Status:     machine.InstanceStatus("scrapped"),
		})
		s.ErrorIs(err, machine.ErrInvalidInstanceStatus)
	})
}
