//go:build e2e

package listing_test

import (
	"net/http"
	"testing"
	"time"

	"staycal/internal/handler/dto/response"
	"staycal/tests/common/builder"
	"staycal/tests/common/dbtest"
	"staycal/tests/common/httptest"
	"staycal/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const listingsURL = "/api/listings"

type ListingSuite struct {
	e2e.SharedSuite
}

func (s *ListingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestListingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ListingSuite))
}

// =============================================================================
// TestCreateListing
// =============================================================================

func (s *ListingSuite) TestCreateListing() {
	s.Run("Normal case: listing is created and retrievable", func() {
		t := s.T()

		reqBody := builder.NewListingBuilder().
			WithName("Seaside Cottage").
			WithBasePriceCents(12000).
			WithCurrency("USD").
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code, "Should create listing successfully")

		var created response.ListingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID, "Listing ID should not be empty")
		httptest.AssertHeaders(t, w, map[string]string{"Location": listingsURL + "/" + created.ID})

		// Fetch detail and assert
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, listingsURL+"/"+created.ID, nil)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.ListingResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &actual)
		require.NoError(t, err)

		expected := &response.ListingResponse{
			Name:           "Seaside Cottage",
			BasePriceCents: 12000,
			Currency:       "USD",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ListingResponse{}, "ID"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Listing response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: currency is normalized to upper case", func() {
		t := s.T()

		reqBody := builder.NewListingBuilder().WithCurrency("eur").BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, reqBody)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ListingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)
		require.Equal(t, "EUR", created.Currency)
	})

	s.Run("Error case: non-positive base price is rejected", func() {
		t := s.T()

		reqBody := builder.NewListingBuilder().WithBasePriceCents(0).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, reqBody)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestListListings
// =============================================================================

func (s *ListingSuite) TestListListings() {
	s.Run("Normal case: returns all listings", func() {
		t := s.T()

		dbtest.CreateTestListing(t, s.DB, "Cottage A", 10000, "USD")
		dbtest.CreateTestListing(t, s.DB, "Cottage B", 20000, "USD")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listingsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string][]response.ListingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &body)
		require.NoError(t, err)
		require.Len(t, body["listings"], 2)
	})
}

// =============================================================================
// TestUpdateListing
// =============================================================================

func (s *ListingSuite) TestUpdateListing() {
	s.Run("Normal case: name and base price are updated", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, "Old Name", 10000, "USD")

		reqBody := builder.NewListingBuilder().
			WithName("New Name").
			WithBasePriceCents(15000).
			BuildUpdateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, listingsURL+"/"+listingID.String(), reqBody)
		require.Equal(t, http.StatusOK, w.Code)

		var updated response.ListingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &updated)
		require.NoError(t, err)
		require.Equal(t, "New Name", updated.Name)
		require.Equal(t, int64(15000), updated.BasePriceCents)
	})

	s.Run("Normal case: update moves updated_at forward", func() {
		t := s.T()

		createBody := builder.NewListingBuilder().BuildCreateRequestDTO()
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, listingsURL, createBody)
		require.Equal(t, http.StatusCreated, cw.Code)

		var created response.ListingResponse
		err := httptest.DecodeResponseBody(t, cw.Body, &created)
		require.NoError(t, err)

		var createdAt time.Time
		err = s.DB.QueryRow(t.Context(),
			"SELECT created_at FROM listings WHERE id = $1", created.ID).Scan(&createdAt)
		require.NoError(t, err)

		updateBody := builder.NewListingBuilder().WithName("Renamed Cottage").BuildUpdateRequestDTO()
		uw := httptest.PerformRequest(t, s.Router, http.MethodPut, listingsURL+"/"+created.ID, updateBody)
		require.Equal(t, http.StatusOK, uw.Code)

		var createdAfter, updatedAt time.Time
		err = s.DB.QueryRow(t.Context(),
			"SELECT created_at, updated_at FROM listings WHERE id = $1", created.ID).Scan(&createdAfter, &updatedAt)
		require.NoError(t, err)
		require.True(t, createdAfter.Equal(createdAt), "created_at should not change on update")
		require.True(t, updatedAt.After(createdAt), "updated_at should move forward on update")
	})

	s.Run("Error case: unknown listing returns 404", func() {
		t := s.T()

		reqBody := builder.NewListingBuilder().BuildUpdateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, listingsURL+"/"+uuid.New().String(), reqBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestDeleteListing
// =============================================================================

func (s *ListingSuite) TestDeleteListing() {
	s.Run("Normal case: listing and its calendar entries are removed", func() {
		t := s.T()

		listingID := dbtest.CreateTestListing(t, s.DB, "Doomed Cottage", 10000, "USD")
		dbtest.CreateTestBlockedRange(t, s.DB, listingID, "2026-07-10", "2026-07-14", "maintenance")
		dbtest.CreateTestPriceOverride(t, s.DB, listingID, "2026-08-01", "2026-08-05", 18000, "peak")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, listingsURL+"/"+listingID.String(), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, listingsURL+"/"+listingID.String(), nil)
		require.Equal(t, http.StatusNotFound, gw.Code)

		var blockedCount, priceCount int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM calendar_blocked_ranges WHERE scope_id = $1", listingID).Scan(&blockedCount)
		require.NoError(t, err)
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM calendar_price_overrides WHERE scope_id = $1", listingID).Scan(&priceCount)
		require.NoError(t, err)
		require.Zero(t, blockedCount, "blocked ranges should be purged with the listing")
		require.Zero(t, priceCount, "price overrides should be purged with the listing")
	})

	s.Run("Error case: unknown listing returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, listingsURL+"/"+uuid.New().String(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
