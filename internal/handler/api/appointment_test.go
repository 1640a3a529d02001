//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"shop-booking/internal/domain/appointment"
	"shop-booking/internal/handler/api"
	resdto "shop-booking/internal/handler/dto/response"
	"shop-booking/internal/pkg/errs"
	"shop-booking/internal/usecase/commands"
	"shop-booking/internal/usecase/queries"
	"shop-booking/tests/common/builder"
	"shop-booking/tests/common/httptest"
	commandsmock "shop-booking/tests/mock/commands"
	queriesmock "shop-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/appointments/:id", s.handler.Get)
	s.router.POST("/appointments/:id/cancel", s.handler.Cancel)
	s.router.POST("/appointments/:id/confirm", s.handler.Confirm)
	s.router.GET("/shops/:shopId/appointments", s.handler.ListByShopDate)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/appointments/" + view.ID.String()

	s.Run("success: returns the appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.ShopID, body.ShopID)
		s.Equal("10:00", body.StartTime)
		s.Equal("10:30", body.EndTime)
		s.Equal("pending", body.Status)
		s.Require().NotNil(body.CustomerEmail)
		s.Equal("hanako@example.com", *body.CustomerEmail)
		s.True(view.StartsAt.Equal(body.StartsAt))
	})

	s.Run("error: 400 Bad Request on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment id")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrAppointmentNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

// ================================================================================
// TestCancel / TestConfirm
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCancel() {
	b := builder.NewBookingBuilder().AsCancelled()
	url := "/appointments/" + b.ID.String() + "/cancel"

	s.Run("success: returns the cancelled appointment", func() {
		gomock.InOrder(
			s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID).Return(nil),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(appointment.StatusCancelled.String(), body.Status)
	})

	s.Run("error: 409 Conflict when already cancelled", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID).
			Return(errs.Mark(appointment.ErrInvalidStatusTransition, commands.ErrInvalidStatusTransition)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change")
	})

	s.Run("error: 404 Not Found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), b.ID).
			Return(errs.Mark(errs.New("no rows"), commands.ErrAppointmentNotFound)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestConfirm() {
	b := builder.NewBookingBuilder().WithStatus(appointment.StatusConfirmed)
	url := "/appointments/" + b.ID.String() + "/confirm"

	s.Run("success: returns the confirmed appointment", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), b.ID).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Status)
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), b.ID).
			Return(errs.Mark(errs.New("conn reset"), commands.ErrStoreUnavailable)).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

// ================================================================================
// TestListByShopDate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestListByShopDate() {
	shopID := uuid.New()
	url := "/shops/" + shopID.String() + "/appointments"

	s.Run("success: returns the day's appointments", func() {
		views := []*queries.AppointmentView{
			builder.NewBookingBuilder().WithShopID(shopID).WithSlot("09:00", 30).BuildView(),
			builder.NewBookingBuilder().WithShopID(shopID).WithSlot("10:00", 60).BuildView(),
		}
		s.mockQueries.EXPECT().ListByShopDate(gomock.Any(), shopID, "2026-10-14").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-10-14", nil)

		var body []resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("09:00", body[0].StartTime)
		s.Equal("11:00", body[1].EndTime)
	})

	s.Run("success: empty day is an empty array", func() {
		s.mockQueries.EXPECT().ListByShopDate(gomock.Any(), shopID, "2026-10-14").Return([]*queries.AppointmentView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-10-14", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request without a date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})
}
