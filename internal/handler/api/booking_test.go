//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rentora/internal/handler/api"
	"rentora/internal/pkg/errs"
	"rentora/internal/usecase/queries"
	"rentora/tests/common/builder"
	"rentora/tests/common/httptest"
	commandsmock "rentora/tests/mock/commands"
	queriesmock "rentora/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: an Authorization header authenticates as s.userID
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}
	s.router.POST("/bookings", authed(s.handler.CreateBooking))
	s.router.GET("/bookings", authed(s.handler.ListBookings))
	s.router.GET("/bookings/:id", authed(s.handler.GetBooking))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with the created booking", func() {
		reqBuilder := builder.NewRentalRequestBuilder()
		view := &queries.BookingView{
			ID:        uuid.New(),
			VehicleID: reqBuilder.VehicleID,
			UserID:    s.userID,
			Status:    "pending",
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBuilder.BuildDTO(), "bearer-token")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "vehicle not found",
				commandsError:  errs.ErrVehicleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Vehicle not found",
			},
			{
				name:           "dates already booked",
				commandsError:  errs.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked",
			},
			{
				name:           "invalid date range",
				commandsError:  errs.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Return date must be after pickup date",
			},
			{
				name:           "missing rate",
				commandsError:  errs.ErrMissingRate,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "no rate for the requested rental type",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, builder.NewRentalRequestBuilder().BuildDTO(), "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 on a body that fails binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"rental_type": "daily"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns the booking", func() {
		view := &queries.BookingView{ID: bookingID, UserID: s.userID, VehicleName: "Honda Civic 2023"}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 404 hides other users' bookings", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, bookingID).
			Return(nil, queries.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("success: returns the user's bookings", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), VehicleName: "Honda Civic 2023", Status: "active"},
			{ID: uuid.New(), VehicleName: "Toyota Corolla 2022", Status: "completed"},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 50).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []queries.BookingListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: limit query param is forwarded", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, 5).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
