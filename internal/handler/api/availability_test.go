//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"staycal/internal/domain/calendar"
	"staycal/internal/handler/api"
	resdto "staycal/internal/handler/dto/response"
	"staycal/internal/infra"
	"staycal/internal/usecase/queries"
	"staycal/tests/common/httptest"
	queriesmock "staycal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	// Setup routes
	s.router.GET("/listings/:id/availability", s.handler.CheckAvailability)
	s.router.GET("/listings/:id/quote", s.handler.Quote)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

// ================================================================================
// TestCheckAvailability
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestCheckAvailability() {
	listingID := uuid.New()
	baseURL := "/listings/" + listingID.String() + "/availability"
	url := baseURL + "?check_in=2026-07-10&check_out=2026-07-13"

	returnView := &queries.AvailabilityView{
		ListingID: listingID,
		CheckIn:   "2026-07-10",
		CheckOut:  "2026-07-13",
		Nights:    3,
		Available: true,
	}

	s.Run("success: returns 200 OK with availability", func() {
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), listingID, "2026-07-10", "2026-07-13").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(listingID.String(), response.ListingID)
		s.Equal(3, response.Nights)
		s.True(response.Available)
	})

	s.Run("success: blocked stay reports unavailable", func() {
		blockedView := &queries.AvailabilityView{
			ListingID: listingID,
			CheckIn:   "2026-07-10",
			CheckOut:  "2026-07-13",
			Nights:    3,
			Available: false,
		}
		s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), listingID, "2026-07-10", "2026-07-13").
			Return(blockedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Available)
	})

	s.Run("error: 400 Bad Request for invalid listing id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/invalid-uuid/availability?check_in=2026-07-10&check_out=2026-07-13", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid listing id")
	})

	s.Run("error: 400 Bad Request when stay params missing", func() {
		testCases := []struct {
			name  string
			query string
		}{
			{name: "no params", query: ""},
			{name: "missing check_out", query: "?check_in=2026-07-10"},
			{name: "missing check_in", query: "?check_out=2026-07-13"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+tc.query, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "check_in and check_out are required")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "malformed date",
				queriesError:   calendar.ErrInvalidDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Availability check failed",
			},
			{
				name:           "check-out before check-in",
				queriesError:   calendar.ErrInvalidRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Availability check failed",
			},
			{
				name:           "listing not found",
				queriesError:   infra.WrapRepoErr("listing not found", errors.New("no rows"), infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), listingID, "2026-07-10", "2026-07-13").
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *AvailabilityHandlerTestSuite) TestQuote() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String() + "/quote?check_in=2026-07-10&check_out=2026-07-15"

	returnView := &queries.QuoteView{
		ListingID:        listingID,
		CheckIn:          "2026-07-10",
		CheckOut:         "2026-07-15",
		Nights:           5,
		Currency:         "USD",
		NightlyBaseCents: 12000,
		TotalCents:       70000,
	}

	s.Run("success: returns 200 OK with quote", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), listingID, "2026-07-10", "2026-07-15").
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(listingID.String(), response.ListingID)
		s.Equal(5, response.Nights)
		s.Equal("USD", response.Currency)
		s.Equal(int64(70000), response.TotalCents)
	})

	s.Run("error: 409 Conflict when stay overlaps a blocked range", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), listingID, "2026-07-10", "2026-07-15").
			Return(nil, queries.ErrStayUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Stay is unavailable")
	})

	s.Run("error: 500 Internal Server Error on inconsistent overrides", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), listingID, "2026-07-10", "2026-07-15").
			Return(nil, calendar.ErrInconsistentOverrides).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Calendar data is inconsistent")
	})

	s.Run("error: 404 Not Found for missing listing", func() {
		s.mockQueries.EXPECT().Quote(gomock.Any(), listingID, "2026-07-10", "2026-07-15").
			Return(nil, infra.WrapRepoErr("listing not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}
