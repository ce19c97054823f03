//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"machine-rental/internal/domain/analytics"
	"machine-rental/internal/domain/booking"
	"machine-rental/internal/handler/api"
	resdto "machine-rental/internal/handler/dto/response"
	"machine-rental/internal/infra"
	"machine-rental/internal/usecase/queries"
	"machine-rental/tests/common/httptest"
	queriesmock "machine-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockDashboardQueries
	handler     *api.DashboardHandler
	ownerID     uuid.UUID
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockDashboardQueries(s.mockCtrl)
	s.handler = api.NewDashboardHandler(s.mockQueries)
	s.ownerID = uuid.New()

	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.ownerID)
	})
	s.router.GET("/owner/dashboard", s.handler.Get)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) TestGet() {
	s.Run("success: renders totals, revenue chart, mix and ranking", func() {
		view := &queries.DashboardView{
			Totals: queries.DashboardTotals{
				TotalMachines:     4,
				ActiveBookings:    2,
				PendingBookings:   1,
				TotalRevenueCents: 320000,
			},
			Revenue: []analytics.RevenueBucket{
				{Label: "May", Year: 2026, Month: time.May, RevenueCents: 120000},
				{Label: "Jun", Year: 2026, Month: time.June, RevenueCents: 200000},
			},
			StatusMix: []analytics.StatusCount{
				{Status: booking.StatusApprovedByRenter, Count: 2, Ratio: 100},
				{Status: booking.StatusPendingRenterApproval, Count: 1, Ratio: 50},
			},
			Utilization: []analytics.UtilizationEntry{
				{MachineID: uuid.New(), Name: "Mini Excavator", Ratio: 1.0},
			},
		}
		s.mockQueries.EXPECT().GetOwnerDashboard(gomock.Any(), s.ownerID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/dashboard", nil)

		var resp resdto.DashboardResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(4, resp.Totals.TotalMachines)
		s.EqualValues(320000, resp.Totals.TotalRevenueCents)
		s.Len(resp.Revenue, 2)
		s.Equal("Jun", resp.Revenue[1].Label)
		s.Len(resp.StatusMix, 2)
		s.Equal(string(booking.StatusApprovedByRenter), resp.StatusMix[0].Status)
		s.Equal(100, resp.StatusMix[0].Ratio)
		s.Len(resp.Utilization, 1)
		s.InDelta(1.0, resp.Utilization[0].Ratio, 0.001)
	})

	s.Run("error: 500 when the read store is down", func() {
		s.mockQueries.EXPECT().GetOwnerDashboard(gomock.Any(), s.ownerID).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/dashboard", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
