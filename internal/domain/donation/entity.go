package donation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDonorEmail  = errors.New("donor email cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
)

// StatusApproved is the only donation status: there is no moderation gate,
// every donation is approved at creation.
const StatusApproved = "approved"

type Donation struct {
	id          uuid.UUID
	donorEmail  string
	description string
	status      string
	couponCode  *string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDonation(donorEmail, description string) (*Donation, error) {
	if donorEmail == "" {
		return nil, ErrEmptyDonorEmail
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}
	return &Donation{
		id:          uuid.New(),
		donorEmail:  donorEmail,
		description: description,
		status:      StatusApproved,
	}, nil
}

func ReconstructDonation(
	id uuid.UUID,
	donorEmail, description, status string,
	couponCode *string,
	createdAt, updatedAt time.Time,
) *Donation {
	return &Donation{
		id:          id,
		donorEmail:  donorEmail,
		description: description,
		status:      status,
		couponCode:  couponCode,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// AttachCouponCode back-fills the reward code issued for this donation.
func (d *Donation) AttachCouponCode(code string) {
	d.couponCode = &code
}

func (d *Donation) ID() uuid.UUID        { return d.id }
func (d *Donation) DonorEmail() string   { return d.donorEmail }
func (d *Donation) Description() string  { return d.description }
func (d *Donation) Status() string       { return d.status }
func (d *Donation) CouponCode() *string  { return d.couponCode }
func (d *Donation) CreatedAt() time.Time { return d.createdAt }
func (d *Donation) UpdatedAt() time.Time { return d.updatedAt }
