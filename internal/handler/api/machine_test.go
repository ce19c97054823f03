//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"machine-rental/internal/domain/machine"
	"machine-rental/internal/handler/api"
	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/usecase/commands"
	"machine-rental/internal/usecase/queries"
	"machine-rental/tests/common/builder"
	"machine-rental/tests/common/httptest"
	commandsmock "machine-rental/tests/mock/commands"
	queriesmock "machine-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MachineHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMachineCommands
	mockQueries  *queriesmock.MockCatalogQueries
	handler      *api.MachineHandler
	ownerID      uuid.UUID
}

func (s *MachineHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMachineCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewMachineHandler(s.mockCommands, s.mockQueries)
	s.ownerID = uuid.New()

	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.ownerID)
	})
	s.router.GET("/owner/machines", s.handler.List)
	s.router.POST("/owner/machines", s.handler.Create)
	s.router.PATCH("/owner/machines/:id", s.handler.Update)
	s.router.POST("/owner/machines/:id/instances", s.handler.AddInstance)
	s.router.PATCH("/owner/machines/:id/instances/:instanceId", s.handler.UpdateInstance)
}

func (s *MachineHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMachineHandlerSuite(t *testing.T) {
	suite.Run(t, new(MachineHandlerTestSuite))
}

func (s *MachineHandlerTestSuite) TestList() {
	s.Run("success: lists only the caller's fleet", func() {
		item := builder.NewMachineBuilder().WithOwner(s.ownerID).BuildListItem()
		s.mockQueries.EXPECT().ListMachines(gomock.Any(),
			queries.CatalogFilter{OwnerID: &s.ownerID}, queries.NewListPage(1, 0)).
			Return([]queries.MachineListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/machines", nil)

		var resp []resdto.MachineListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(item.ID, resp[0].ID)
	})

	s.Run("success: an empty fleet is an empty array, not null", func() {
		s.mockQueries.EXPECT().ListMachines(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/machines", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *MachineHandlerTestSuite) TestCreate() {
	s.Run("success: registers a machine", func() {
		machineID := uuid.New()
		s.mockCommands.EXPECT().CreateMachine(gomock.Any(), s.ownerID, commands.CreateMachineParams{
			Name:              "Mini Excavator",
			Code:              "EXC-001",
			Description:       "3.5t mini excavator",
			Category:          "excavator",
			PricePerHourCents: 12500,
		}).Return(machineID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/machines",
			builder.NewMachineBuilder().BuildCreateDTO())

		var resp resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(machineID, resp.ID)
	})

	s.Run("error: 409 on a reused machine code", func() {
		s.mockCommands.EXPECT().CreateMachine(gomock.Any(), s.ownerID, gomock.Any()).
			Return(uuid.Nil, commands.ErrDuplicateMachineCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/machines",
			builder.NewMachineBuilder().BuildCreateDTO())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 when required fields are missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/machines",
			map[string]any{"name": "Nameless", "price_per_hour_cents": 1000})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *MachineHandlerTestSuite) TestUpdate() {
	s.Run("success: patches and returns the fresh view", func() {
		view := builder.NewMachineBuilder().WithOwner(s.ownerID).AsInactive().BuildView()
		s.mockCommands.EXPECT().UpdateMachine(gomock.Any(), s.ownerID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, params commands.UpdateMachineParams) error {
				s.Equal(view.ID, params.MachineID)
				s.Require().NotNil(params.IsActive)
				s.False(*params.IsActive)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().GetMachine(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/owner/machines/"+view.ID.String(), map[string]any{"is_active": false})

		var resp resdto.MachineResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.False(resp.IsActive)
	})

	s.Run("error: another owner's machine reads as 404", func() {
		s.mockCommands.EXPECT().UpdateMachine(gomock.Any(), s.ownerID, gomock.Any()).
			Return(commands.ErrNotMachineOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/owner/machines/"+uuid.New().String(), map[string]any{"name": "Hijacked"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 422 on a domain validation failure", func() {
		s.mockCommands.EXPECT().UpdateMachine(gomock.Any(), s.ownerID, gomock.Any()).
			Return(machine.ErrEmptyName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/owner/machines/"+uuid.New().String(), map[string]any{"name": "  "})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 on a malformed machine ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/owner/machines/not-a-uuid", map[string]any{"name": "X"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid machine ID")
	})
}

func (s *MachineHandlerTestSuite) TestAddInstance() {
	machineID := uuid.New()

	s.Run("success: adds a physical unit", func() {
		instanceID := uuid.New()
		s.mockCommands.EXPECT().AddInstance(gomock.Any(), s.ownerID, commands.CreateInstanceParams{
			MachineID:    machineID,
			InstanceCode: "EXC-001-B",
		}).Return(instanceID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/owner/machines/"+machineID.String()+"/instances",
			map[string]string{"instance_code": "EXC-001-B"})

		var resp resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(instanceID, resp.ID)
	})

	s.Run("error: 409 on a reused unit code", func() {
		s.mockCommands.EXPECT().AddInstance(gomock.Any(), s.ownerID, gomock.Any()).
			Return(uuid.Nil, commands.ErrDuplicateInstanceCode).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/owner/machines/"+machineID.String()+"/instances",
			map[string]string{"instance_code": "EXC-001-A"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 400 when the unit code is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/owner/machines/"+machineID.String()+"/instances", map[string]string{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *MachineHandlerTestSuite) TestUpdateInstance() {
	machineID := uuid.New()
	instanceID := uuid.New()
	path := "/owner/machines/" + machineID.String() + "/instances/" + instanceID.String()

	s.Run("success: moves a unit into maintenance", func() {
		s.mockCommands.EXPECT().UpdateInstanceStatus(gomock.Any(), s.ownerID, commands.UpdateInstanceParams{
			MachineID:  machineID,
			InstanceID: instanceID,
			Status:     machine.InstanceMaintenance,
		}).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path,
			map[string]string{"status": "maintenance"})
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on a status outside the allowed set", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path,
			map[string]string{"status": "scrapped"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: a unit of another machine reads as 404", func() {
		s.mockCommands.EXPECT().UpdateInstanceStatus(gomock.Any(), s.ownerID, gomock.Any()).
			Return(commands.ErrInstanceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, path,
			map[string]string{"status": "active"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
