//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rentora/internal/domain/extension"
	"rentora/internal/domain/pricing"
	"rentora/internal/handler/api"
	resdto "rentora/internal/handler/dto/response"
	"rentora/internal/pkg/errs"
	"rentora/internal/usecase/commands"
	"rentora/internal/usecase/queries"
	"rentora/tests/common/httptest"
	commandsmock "rentora/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExtensionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockExtensionCommands
	handler      *api.ExtensionHandler
	userID       uuid.UUID
}

func (s *ExtensionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockExtensionCommands(s.mockCtrl)
	s.handler = api.NewExtensionHandler(s.mockCommands)

	// Mock middleware behavior: an Authorization header authenticates as s.userID
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}
	s.router.GET("/bookings/:id/extension", authed(s.handler.GetExtensionOptions))
	s.router.POST("/bookings/:id/extension", authed(s.handler.RequestExtension))
}

func (s *ExtensionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExtensionHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExtensionHandlerTestSuite))
}

func (s *ExtensionHandlerTestSuite) TestGetExtensionOptions() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/extension"

	s.Run("success: eligible booking returns the date window", func() {
		minDate := time.Date(2025, 5, 7, 0, 0, 0, 0, time.UTC)
		maxDate := time.Date(2025, 7, 29, 0, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().GetExtensionOptions(gomock.Any(), s.userID, bookingID).
			Return(&commands.ExtensionOptions{
				Eligibility: extension.Eligibility{CanExtend: true, DaysRemaining: 10, MaxExtensionDays: 90},
				DateLimits:  extension.DateLimits{MinDate: minDate, MaxDate: maxDate},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ExtensionOptionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.CanExtend)
		s.Equal(10, response.DaysRemaining)
		s.Equal(90, response.MaxExtensionDays)
		s.True(minDate.Equal(response.MinReturnDate))
		s.True(maxDate.Equal(response.MaxReturnDate))
	})

	s.Run("success: ineligible booking still returns 200 with the reason", func() {
		s.mockCommands.EXPECT().GetExtensionOptions(gomock.Any(), s.userID, bookingID).
			Return(&commands.ExtensionOptions{
				Eligibility: extension.Eligibility{
					CanExtend:     false,
					Reason:        "weekly rentals cannot be extended",
					DaysRemaining: 10,
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ExtensionOptionsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.CanExtend)
		s.Equal("weekly rentals cannot be extended", response.Reason)
	})

	s.Run("error: 404 when the booking is missing or not owned", func() {
		s.mockCommands.EXPECT().GetExtensionOptions(gomock.Any(), s.userID, bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid/extension", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

func (s *ExtensionHandlerTestSuite) TestRequestExtension() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/extension"
	newReturn := time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)
	reqBody := map[string]any{"new_return_date": newReturn.Format(time.RFC3339)}

	s.Run("success: committed extension returns 201 with pricing and booking", func() {
		view := &queries.BookingView{ID: uuid.New(), VehicleName: "Honda Civic 2023"}
		s.mockCommands.EXPECT().RequestExtension(gomock.Any(), s.userID, bookingID, gomock.Any()).
			Return(&commands.ExtensionDecision{
				CanExtend:    true,
				Availability: &extension.Availability{Available: true},
				Pricing: &extension.Pricing{
					AdditionalDays:  30,
					Method:          pricing.MethodMonthly,
					ExtensionAmount: 350,
					NewReturnDate:   newReturn,
					NewTotalDays:    90,
				},
				Booking: view,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ExtensionDecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.CanExtend)
		s.Require().NotNil(response.Pricing)
		s.Equal(30, response.Pricing.AdditionalDays)
		s.Equal(float64(350), response.Pricing.ExtensionAmount)
		s.Require().NotNil(response.Booking)
		s.Equal(view.ID, response.Booking.ID)
	})

	s.Run("success: refused extension returns 200 with the refusal", func() {
		conflict := extension.Conflict{BookingID: uuid.New()}
		s.mockCommands.EXPECT().RequestExtension(gomock.Any(), s.userID, bookingID, gomock.Any()).
			Return(&commands.ExtensionDecision{
				CanExtend:    false,
				Reason:       "the requested dates are not available",
				Availability: &extension.Availability{Available: false, Conflicts: []extension.Conflict{conflict}},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ExtensionDecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.CanExtend)
		s.Len(response.Conflicts, 1)
		s.Equal(conflict.BookingID, response.Conflicts[0].BookingID)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "out of range",
				commandsError:  errs.ErrExtensionOutOfRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "outside the allowed extension window",
			},
			{
				name:           "availability check fault",
				commandsError:  errs.ErrAvailabilityCheckFault,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Availability could not be verified",
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
				s.mockCommands.EXPECT().RequestExtension(gomock.Any(), s.userID, bookingID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 when the body has no return date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
