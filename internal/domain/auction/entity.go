package auction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMinimumBid = errors.New("minimum bid must be positive")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrAuctionClosed     = errors.New("auction is closed")
	ErrBidTooLow         = errors.New("bid must exceed current bid")
)

// Auction is a listing with a monotonically non-decreasing current bid.
// current_bid >= minimum_bid holds from construction onward: the opening
// state carries current_bid = minimum_bid and every accepted bid is
// strictly greater.
type Auction struct {
	id          uuid.UUID
	sellerID    uuid.UUID
	title       string
	minimumBid  int64
	currentBid  int64
	status      Status
	startTime   time.Time
	durationHrs int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAuction(sellerID uuid.UUID, title string, minimumBid int64, startTime time.Time, durationHrs int) (*Auction, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if minimumBid <= 0 {
		return nil, ErrInvalidMinimumBid
	}
	if durationHrs <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Auction{
		id:          uuid.New(),
		sellerID:    sellerID,
		title:       title,
		minimumBid:  minimumBid,
		currentBid:  minimumBid,
		status:      StatusActive,
		startTime:   startTime,
		durationHrs: durationHrs,
	}, nil
}

func ReconstructAuction(
	id, sellerID uuid.UUID,
	title string,
	minimumBid, currentBid int64,
	status Status,
	startTime time.Time,
	durationHrs int,
	createdAt, updatedAt time.Time,
) *Auction {
	return &Auction{
		id:          id,
		sellerID:    sellerID,
		title:       title,
		minimumBid:  minimumBid,
		currentBid:  currentBid,
		status:      status,
		startTime:   startTime,
		durationHrs: durationHrs,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ValidateBid checks a proposed amount against the current state. The
// storage layer repeats the strictly-greater comparison as a conditional
// update, so two bids racing past this check cannot both win.
func (a *Auction) ValidateBid(amount int64) error {
	if a.status.IsClosed() {
		return ErrAuctionClosed
	}
	if amount <= a.currentBid {
		return ErrBidTooLow
	}
	return nil
}

func (a *Auction) EndsAt() time.Time {
	return a.startTime.Add(time.Duration(a.durationHrs) * time.Hour)
}

// HasExpired derives time-based expiry; the stored status stays untouched.
func (a *Auction) HasExpired(now time.Time) bool {
	return now.After(a.EndsAt())
}

func (a *Auction) Close(to Status) error {
	if !to.IsValid() || to == StatusActive {
		return ErrAuctionClosed
	}
	a.status = to
	return nil
}

func (a *Auction) ID() uuid.UUID       { return a.id }
func (a *Auction) SellerID() uuid.UUID { return a.sellerID }
func (a *Auction) Title() string       { return a.title }
func (a *Auction) MinimumBid() int64   { return a.minimumBid }
func (a *Auction) CurrentBid() int64   { return a.currentBid }
func (a *Auction) Status() Status      { return a.status }
func (a *Auction) StartTime() time.Time { return a.startTime }
func (a *Auction) DurationHrs() int    { return a.durationHrs }
func (a *Auction) CreatedAt() time.Time { return a.createdAt }
func (a *Auction) UpdatedAt() time.Time { return a.updatedAt }

// Bid is an immutable, append-only record of one offer. bid_time is
// assigned by the server at insertion.
type Bid struct {
	id        uuid.UUID
	auctionID uuid.UUID
	bidderID  uuid.UUID
	amount    int64
	bidTime   time.Time
}

func NewBid(auctionID, bidderID uuid.UUID, amount int64) *Bid {
	return &Bid{
		id:        uuid.New(),
		auctionID: auctionID,
		bidderID:  bidderID,
		amount:    amount,
	}
}

func ReconstructBid(id, auctionID, bidderID uuid.UUID, amount int64, bidTime time.Time) *Bid {
	return &Bid{
		id:        id,
		auctionID: auctionID,
		bidderID:  bidderID,
		amount:    amount,
		bidTime:   bidTime,
	}
}

func (b *Bid) ID() uuid.UUID        { return b.id }
func (b *Bid) AuctionID() uuid.UUID { return b.auctionID }
func (b *Bid) BidderID() uuid.UUID  { return b.bidderID }
func (b *Bid) Amount() int64        { return b.amount }
func (b *Bid) BidTime() time.Time   { return b.bidTime }
