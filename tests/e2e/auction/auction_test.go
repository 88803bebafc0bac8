//go:build e2e

package auction_test

import (
	"fmt"
	"net/http"
	"testing"

	"relove/tests/common/authtest"
	"relove/tests/common/builder"
	"relove/tests/common/dbtest"
	"relove/tests/common/httptest"
	"relove/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	auctionsURL   = "/api/auctions"
	auctionURL    = "/api/auctions/%s"
	placeBidURL   = "/api/auctions/%s/bid"
	bidHistoryURL = "/api/auctions/%s/bids"
	closeURL      = "/api/auctions/%s/close"
)

type AuctionSuite struct {
	e2e.SharedSuite
}

func TestAuctionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuctionSuite))
}

func (s *AuctionSuite) token(t *testing.T, email string) string {
	helper := authtest.NewJWTHelper(s.Config.JWT)
	return helper.GenerateToken(t, uuid.New(), email)
}

func (s *AuctionSuite) TestAuctionLifecycle() {
	s.Run("Normal case: create, outbid, and close as sold", func() {
		t := s.T()
		sellerToken := s.token(t, "seller@example.com")
		bidderToken := s.token(t, "bidder@example.com")

		reqBody := builder.NewAuctionBuilder().With(func(b *builder.AuctionBuilder) {
			b.MinimumBid = 5000
		}).BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, auctionsURL, reqBody, sellerToken)
		var created map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		auctionID := created["id"].(string)
		require.NotEmpty(t, auctionID)

		// The opening bid must strictly exceed the minimum.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(placeBidURL, auctionID),
			map[string]int64{"bid_amount": 5000}, bidderToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "higher")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(placeBidURL, auctionID),
			map[string]int64{"bid_amount": 6000}, bidderToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// An equal follow-up bid loses; a higher one wins.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(placeBidURL, auctionID),
			map[string]int64{"bid_amount": 6000}, bidderToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "higher")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(placeBidURL, auctionID),
			map[string]int64{"bid_amount": 7500}, bidderToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var detail map[string]any
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(auctionURL, auctionID), nil, bidderToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, float64(7500), detail["currentBid"])

		// Rejected bids never reach the history.
		var history []map[string]any
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bidHistoryURL, auctionID), nil, bidderToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &history)
		require.Len(t, history, 2)
		require.Equal(t, float64(6000), history[0]["bidAmount"])
		require.Equal(t, float64(7500), history[1]["bidAmount"])

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(closeURL, auctionID),
			map[string]string{"status": "sold"}, sellerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(placeBidURL, auctionID),
			map[string]int64{"bid_amount": 9000}, bidderToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "closed")
	})

	s.Run("Error case: closing twice conflicts", func() {
		t := s.T()
		token := s.token(t, "seller@example.com")
		auctionID := dbtest.CreateTestAuction(t, s.DB, uuid.New(), "ended", 5000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(closeURL, auctionID),
			map[string]string{"status": "sold"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "closed")
	})

	s.Run("Error case: requests without a token are rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, auctionsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuctionSuite) TestListActiveAuctions() {
	s.Run("Normal case: closed auctions are excluded", func() {
		t := s.T()
		token := s.token(t, "seller@example.com")

		activeID := dbtest.CreateTestAuction(t, s.DB, uuid.New(), "active", 5000)
		dbtest.CreateTestAuction(t, s.DB, uuid.New(), "ended", 5000)
		dbtest.CreateTestAuction(t, s.DB, uuid.New(), "sold", 8000)

		var listed []map[string]any
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, auctionsURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, activeID.String(), listed[0]["id"])
	})
}

func (s *AuctionSuite) TestExpiredToken() {
	s.Run("Error case: expired token gets 401", func() {
		t := s.T()
		helper := authtest.NewJWTHelper(s.Config.JWT)
		expired := helper.CreateExpiredToken(t, uuid.New(), "seller@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, auctionsURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
