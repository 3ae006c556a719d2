package domain

import "time"

// CampaignStatus is the durable campaign state stored in the row. It is
// deliberately coarser than the display status: every date-driven phase
// between approval and completion rests on "approved", and the richer
// presentation is derived on read (see ResolveDisplay).
type CampaignStatus string

const (
	StatusPending   CampaignStatus = "pending"
	StatusApproved  CampaignStatus = "approved"
	StatusSuspended CampaignStatus = "suspended"
	StatusCompleted CampaignStatus = "completed"
	StatusCancelled CampaignStatus = "cancelled"
)

// DisplayStatus is the derived, presentation-facing campaign phase,
// recomputed on every read rather than stored.
type DisplayStatus string

const (
	DisplayPending    DisplayStatus = "pending"
	DisplayRecruiting DisplayStatus = "recruiting"
	DisplayInProgress DisplayStatus = "in_progress"
	DisplayApproved   DisplayStatus = "approved"
	DisplaySuspended  DisplayStatus = "suspended"
	DisplayCompleted  DisplayStatus = "completed"
	DisplayCancelled  DisplayStatus = "cancelled"
)

// PaymentStatus tracks whether the advertiser has paid for the campaign.
// An unpaid campaign never auto-advances past its pending-equivalent
// presentation regardless of dates.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// Campaign represents a sponsored-content campaign. Monetary values and
// sphere points are stored in integer units (1 point = 1 KRW).
type Campaign struct {
	ID           int64
	AdvertiserID int64
	Title        string
	Description  string
	ProductName  string
	ProductURL   string
	Requirements string

	PricingType  PricingType
	ProductValue int64
	SpherePoints int64 // reward points per participant
	Slots        int

	Status        CampaignStatus
	PaymentStatus PaymentStatus

	// Refundable starts true and is flipped to false irreversibly the
	// moment the first application is recorded.
	Refundable bool

	// Schedule dates are civil KST dates; a zero Date means the bound is
	// not set and does not constrain.
	ApplicationStart   Date
	ApplicationEnd     Date
	Announcement       Date
	ContentStart       Date
	ContentEnd         Date
	ResultAnnouncement Date

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidCampaignStatus reports whether s is a known persisted status.
func ValidCampaignStatus(s CampaignStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusSuspended, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
