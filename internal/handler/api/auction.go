package api

import (
	"errors"
	"net/http"

	"relove/internal/domain/auction"
	reqdto "relove/internal/handler/dto/request"
	resdto "relove/internal/handler/dto/response"
	"relove/internal/handler/middleware"
	"relove/internal/pkg/errs"
	"relove/internal/usecase/commands"
	"relove/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuctionHandler struct {
	auctionCommands commands.AuctionCommands
	auctionQueries  queries.AuctionQueries
}

func NewAuctionHandler(auctionCommands commands.AuctionCommands, auctionQueries queries.AuctionQueries) *AuctionHandler {
	return &AuctionHandler{
		auctionCommands: auctionCommands,
		auctionQueries:  auctionQueries,
	}
}

// @Summary Create auction
// @Description Create a new auction listing
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAuctionRequest true "Auction request"
// @Success 201 {object} resdto.AuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /auctions [post]
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	sellerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAuctionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.auctionCommands.CreateAuction(c.Request.Context(), commands.CreateAuctionParams{
		SellerID:    sellerID,
		Title:       req.Title,
		MinimumBid:  req.MinimumBid,
		StartTime:   req.StartTime,
		DurationHrs: req.DurationHrs,
	})
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuctionView(view))
}

// @Summary List active auctions
// @Description List auctions not yet manually closed, newest first
// @Tags auctions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AuctionResponse
// @Failure 401 {object} map[string]string
// @Router /auctions [get]
func (h *AuctionHandler) ListActiveAuctions(c *gin.Context) {
	views, err := h.auctionQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AuctionResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromAuctionView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get auction
// @Description Get auction by ID with derived expiry
// @Tags auctions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {object} resdto.AuctionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id} [get]
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	view, err := h.auctionQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrAuctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuctionView(view))
}

// @Summary Place bid
// @Description Place a strictly-increasing bid on an auction
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Param request body reqdto.PlaceBidRequest true "Bid request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auctions/{id}/bid [post]
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	var req reqdto.PlaceBidRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bidderID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if req.BidderID != nil {
		bidderID = *req.BidderID
	}

	err = h.auctionCommands.PlaceBid(c.Request.Context(), commands.PlaceBidParams{
		AuctionID: auctionID,
		BidderID:  bidderID,
		BidAmount: req.BidAmount,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, errs.ErrAuctionClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction is closed",
			})
		case errors.Is(err, errs.ErrBidTooLow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Bid must be higher than the current bid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Bid history
// @Description Get all bids for an auction, most recent first
// @Tags auctions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Success 200 {array} resdto.BidResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auctions/{id}/bids [get]
func (h *AuctionHandler) GetBidHistory(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	views, err := h.auctionQueries.BidHistory(c.Request.Context(), auctionID)
	if err != nil {
		if errors.Is(err, errs.ErrAuctionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BidResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBidView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Close auction
// @Description Manually close an auction as ended or sold
// @Tags auctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Auction ID"
// @Param request body reqdto.CloseAuctionRequest true "Close request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auctions/{id}/close [post]
func (h *AuctionHandler) CloseAuction(c *gin.Context) {
	auctionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid auction ID format",
		})
		return
	}

	var req reqdto.CloseAuctionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.auctionCommands.CloseAuction(c.Request.Context(), auctionID, auction.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAuctionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Auction not found",
			})
		case errors.Is(err, errs.ErrAuctionClosed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Auction is already closed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
