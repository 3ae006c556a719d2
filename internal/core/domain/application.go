package domain

import "time"

// ApplicationStatus tracks an influencer's application to a campaign.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is an influencer's application to a campaign. At most one
// application exists per (campaign, influencer) pair.
type Application struct {
	ID           int64
	CampaignID   int64
	InfluencerID int64
	Status       ApplicationStatus
	Message      string
	AppliedAt    time.Time
	ReviewedAt   *time.Time
}

// ReviewStatus is the moderation state of a submitted review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// Review is the sponsored content an influencer submits for an approved
// application. Each application owns at most one review.
type Review struct {
	ID              int64
	ApplicationID   int64
	PostURL         string
	ImageURL        string
	Status          ReviewStatus
	RejectionReason string
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
}

// Reviews may be submitted for a few days past the result announcement to
// cover late postings.
const reviewGraceDays = 3

// ReviewWindowOpen reports whether a review may be submitted or edited
// today for the campaign's schedule: from the content start date through
// three days past the result announcement. Unset bounds do not constrain.
func ReviewWindowOpen(c Campaign, today Date) bool {
	if !c.ContentStart.IsZero() && today.Before(c.ContentStart) {
		return false
	}
	if !c.ResultAnnouncement.IsZero() && today.After(c.ResultAnnouncement.AddDays(reviewGraceDays)) {
		return false
	}
	return true
}
