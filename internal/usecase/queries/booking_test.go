//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"machine-rental/internal/domain/booking"
	"machine-rental/internal/infra"
	"machine-rental/internal/usecase/queries"
	queriesmock "machine-rental/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockBookingReadStore
	queries   queries.BookingQueries

	ownerID  uuid.UUID
	clientID uuid.UUID
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	s.queries = queries.NewBookingQueries(s.mockStore)
	s.ownerID = uuid.New()
	s.clientID = uuid.New()
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) bookingView(id uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:             id,
		MachineID:      uuid.New(),
		MachineName:    "Mini Excavator",
		OwnerID:        s.ownerID,
		ClientID:       s.clientID,
		ClientName:     "Test Client",
		StartsAt:       time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		EndsAt:         time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC),
		RequestedCount: 1,
		Status:         booking.StatusPendingRenterApproval.String(),
	}
}

func (s *BookingQueriesTestSuite) TestGetForOwner() {
	ctx := context.Background()

	s.Run("success: view comes back with its message thread", func() {
		bookingID := uuid.New()
		messages := []queries.MessageView{
			{ID: uuid.New(), SenderID: s.clientID, Body: "Need it delivered by 8am.", CreatedAt: time.Now()},
		}
		s.mockStore.EXPECT().FindByID(ctx, bookingID).Return(s.bookingView(bookingID), nil)
		s.mockStore.EXPECT().FindMessages(ctx, bookingID).Return(messages, nil)

		view, err := s.queries.GetForOwner(ctx, s.ownerID, bookingID)
		s.Require().NoError(err)
		s.Equal(bookingID, view.ID)
		s.Equal(messages, view.Messages)
	})

	s.Run("someone else's booking is forbidden", func() {
		bookingID := uuid.New()
		s.mockStore.EXPECT().FindByID(ctx, bookingID).Return(s.bookingView(bookingID), nil)
		s.mockStore.EXPECT().FindMessages(ctx, bookingID).Return(nil, nil)

		_, err := s.queries.GetForOwner(ctx, uuid.New(), bookingID)
		s.ErrorIs(err, queries.ErrBookingForbidden)
	})

	s.Run("missing booking maps to the not-found sentinel", func() {
		bookingID := uuid.New()
		s.mockStore.EXPECT().FindByID(ctx, bookingID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found"))

		_, err := s.queries.GetForOwner(ctx, s.ownerID, bookingID)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestGetForClient() {
	ctx := context.Background()

	s.Run("success", func() {
		bookingID := uuid.New()
		s.mockStore.EXPECT().FindByID(ctx, bookingID).Return(s.bookingView(bookingID), nil)
		s.mockStore.EXPECT().FindMessages(ctx, bookingID).Return(nil, nil)

		view, err := s.queries.GetForClient(ctx, s.clientID, bookingID)
		s.Require().NoError(err)
		s.Equal(s.clientID, view.ClientID)
	})

	s.Run("a client cannot read through the owner check", func() {
		bookingID := uuid.New()
		s.mockStore.EXPECT().FindByID(ctx, bookingID).Return(s.bookingView(bookingID), nil)
		s.mockStore.EXPECT().FindMessages(ctx, bookingID).Return(nil, nil)

		// Owner ID offered as the client: still forbidden.
		_, err := s.queries.GetForClient(ctx, s.ownerID, bookingID)
		s.ErrorIs(err, queries.ErrBookingForbidden)
	})

	s.Run("a failing message lookup fails the whole read", func() {
		bookingID := uuid.New()
		s.mockStore.EXPECT().FindByID(ctx, bookingID).Return(s.bookingView(bookingID), nil)
		s.mockStore.EXPECT().FindMessages(ctx, bookingID).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "connection reset"))

		_, err := s.queries.GetForClient(ctx, s.clientID, bookingID)
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}

func (s *BookingQueriesTestSuite) TestList() {
	ctx := context.Background()

	s.Run("owner listing forwards the status filter and page", func() {
		status := booking.StatusPendingRenterApproval
		page := queries.NewListPage(2, 10)
		items := []queries.BookingListItem{{ID: uuid.New(), MachineName: "Mini Excavator"}}
		s.mockStore.EXPECT().ListByOwner(ctx, s.ownerID, &status, page).Return(items, nil)

		got, err := s.queries.ListForOwner(ctx, s.ownerID, &status, page)
		s.Require().NoError(err)
		s.Equal(items, got)
	})

	s.Run("client listing with no filter", func() {
		page := queries.NewListPage(1, 0)
		s.mockStore.EXPECT().ListByClient(ctx, s.clientID, nil, page).Return(nil, nil)

		got, err := s.queries.ListForClient(ctx, s.clientID, nil, page)
		s.Require().NoError(err)
		s.Empty(got)
	})
}
