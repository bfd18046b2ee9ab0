//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"staycal/internal/domain/listing"
	"staycal/internal/handler/api"
	resdto "staycal/internal/handler/dto/response"
	"staycal/internal/infra"
	"staycal/internal/usecase/commands"
	"staycal/internal/usecase/queries"
	"staycal/tests/common/builder"
	"staycal/tests/common/httptest"
	"staycal/tests/common/testutil"
	commandsmock "staycal/tests/mock/commands"
	queriesmock "staycal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockListingCommands
	mockQueries  *queriesmock.MockListingQueries
	handler      *api.ListingHandler
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	s.handler = api.NewListingHandler(s.mockCommands, s.mockQueries)

	// Setup routes
	s.router.POST("/listings", s.handler.Create)
	s.router.GET("/listings", s.handler.List)
	s.router.GET("/listings/:id", s.handler.Get)
	s.router.PUT("/listings/:id", s.handler.Update)
	s.router.DELETE("/listings/:id", s.handler.Delete)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

type testCaseListing struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ListingHandlerTestSuite) TestCreate() {
	url := "/listings"

	reqBody := builder.NewListingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewListingBuilder().BuildViewQuery()
	expectedResult := &commands.CreateListingResult{ListingID: returnView.ID}

	// Validation boundary cases
	bound := []testCaseListing{
		{name: "name length OK (200 chars)", mutate: testutil.Field("name", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "name length invalid (201 chars)", mutate: testutil.Field("name", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "base price boundary OK (1)", mutate: testutil.Field("base_price_cents", 1), expectCode: http.StatusCreated},
		{name: "base price boundary invalid (0)", mutate: testutil.Field("base_price_cents", 0), expectCode: http.StatusBadRequest},
		{name: "base price invalid (negative)", mutate: testutil.Field("base_price_cents", -100), expectCode: http.StatusBadRequest},
		{name: "currency length invalid (2 chars)", mutate: testutil.Field("currency", "US"), expectCode: http.StatusBadRequest},
		{name: "currency length invalid (4 chars)", mutate: testutil.Field("currency", "USDD"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseListing{
		{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: base_price_cents (required)", mutate: testutil.Field("base_price_cents", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: currency (required)", mutate: testutil.Field("currency", nil), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseListing{bound, missing}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateListing(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.Name, response.Name)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/listings/" + returnView.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateListing(gomock.Any(), gomock.Any()).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "domain validation error",
				commandsError:  listing.ErrInvalidCurrency,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Create listing failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateListing(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ListingHandlerTestSuite) TestGet() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String()

	returnView := builder.NewListingBuilder().WithID(listingID).BuildViewQuery()

	s.Run("success: returns 200 OK with ListingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), listingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(listingID.String(), response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.BasePriceCents, response.BasePriceCents)
		s.Equal(returnView.Currency, response.Currency)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing listing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), listingID).
			Return(nil, infra.WrapRepoErr("listing not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), listingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ListingHandlerTestSuite) TestList() {
	url := "/listings"

	views := []*queries.ListingView{
		builder.NewListingBuilder().WithName("Seaside Cottage").BuildViewQuery(),
		builder.NewListingBuilder().WithName("Mountain Cabin").BuildViewQuery(),
	}

	s.Run("success: returns listing list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		listings, ok := response["listings"].([]any)
		s.True(ok)
		s.Equal(len(views), len(listings))
	})

	s.Run("success: returns empty list", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.ListingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		listings, ok := response["listings"].([]any)
		s.True(ok)
		s.Empty(listings)
	})

	s.Run("error: 500 Internal Server Error on query error", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ListingHandlerTestSuite) TestUpdate() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String()

	reqBody := builder.NewListingBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewListingBuilder().WithID(listingID).BuildViewQuery()

	s.Run("success: returns 200 OK with updated listing", func() {
		s.mockCommands.EXPECT().UpdateListing(gomock.Any(), listingID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), listingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(listingID.String(), response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/listings/invalid-uuid", reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseListing{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: base_price_cents (required)", mutate: testutil.Field("base_price_cents", nil), expectCode: http.StatusBadRequest},
			{name: "base price boundary invalid (0)", mutate: testutil.Field("base_price_cents", 0), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 404 Not Found for missing listing", func() {
		s.mockCommands.EXPECT().UpdateListing(gomock.Any(), listingID, gomock.Any()).
			Return(infra.WrapRepoErr("listing not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ListingHandlerTestSuite) TestDelete() {
	listingID := uuid.New()
	url := "/listings/" + listingID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteListing(gomock.Any(), listingID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/listings/invalid-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing listing", func() {
		s.mockCommands.EXPECT().DeleteListing(gomock.Any(), listingID).
			Return(infra.WrapRepoErr("listing not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 500 Internal Server Error on command failure", func() {
		s.mockCommands.EXPECT().DeleteListing(gomock.Any(), listingID).
			Return(errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
