package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) Date { return NewDate(y, m, d) }

// schedule is a paid, approved campaign recruiting June 1-10, announcing
// June 12, content June 15-30, results July 5.
func schedule() Campaign {
	return Campaign{
		Status:             StatusApproved,
		PaymentStatus:      PaymentPaid,
		ApplicationStart:   date(2026, time.June, 1),
		ApplicationEnd:     date(2026, time.June, 10),
		Announcement:       date(2026, time.June, 12),
		ContentStart:       date(2026, time.June, 15),
		ContentEnd:         date(2026, time.June, 30),
		ResultAnnouncement: date(2026, time.July, 5),
	}
}

func TestResolveStatus(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Campaign)
		today Date
		want  CampaignStatus
	}{
		{
			name:  "pending ignores dates",
			mod:   func(c *Campaign) { c.Status = StatusPending },
			today: date(2026, time.August, 1),
			want:  StatusPending,
		},
		{
			name:  "unpaid never completes by date",
			mod:   func(c *Campaign) { c.PaymentStatus = PaymentUnpaid },
			today: date(2026, time.August, 1),
			want:  StatusApproved,
		},
		{
			name:  "suspended is never overwritten",
			mod:   func(c *Campaign) { c.Status = StatusSuspended },
			today: date(2026, time.August, 1),
			want:  StatusSuspended,
		},
		{
			name:  "cancelled is never overwritten",
			mod:   func(c *Campaign) { c.Status = StatusCancelled },
			today: date(2026, time.August, 1),
			want:  StatusCancelled,
		},
		{
			name:  "completed is absorbing",
			mod:   func(c *Campaign) { c.Status = StatusCompleted },
			today: date(2026, time.May, 1),
			want:  StatusCompleted,
		},
		{
			name:  "approved on the result announcement day",
			mod:   func(c *Campaign) {},
			today: date(2026, time.July, 5),
			want:  StatusApproved,
		},
		{
			name:  "completes the day after the result announcement",
			mod:   func(c *Campaign) {},
			today: date(2026, time.July, 6),
			want:  StatusCompleted,
		},
		{
			name:  "no result announcement means no date completion",
			mod:   func(c *Campaign) { c.ResultAnnouncement = Date{} },
			today: date(2030, time.January, 1),
			want:  StatusApproved,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := schedule()
			tt.mod(&c)
			if got := ResolveStatus(c, tt.today); got != tt.want {
				t.Fatalf("ResolveStatus = %q, want %q", got, tt.want)
			}
			// The resolver is idempotent: persisting its own answer and
			// resolving again yields the same status.
			c.Status = ResolveStatus(c, tt.today)
			if got := ResolveStatus(c, tt.today); got != tt.want {
				t.Fatalf("ResolveStatus not idempotent: second pass %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveDisplay(t *testing.T) {
	tests := []struct {
		name  string
		mod   func(*Campaign)
		today Date
		want  DisplayStatus
	}{
		{
			name:  "unpaid shows pending regardless of dates",
			mod:   func(c *Campaign) { c.PaymentStatus = PaymentUnpaid },
			today: date(2026, time.June, 5),
			want:  DisplayPending,
		},
		{
			name:  "before the window shows approved",
			mod:   func(c *Campaign) {},
			today: date(2026, time.May, 20),
			want:  DisplayApproved,
		},
		{
			name:  "window start is inclusive",
			mod:   func(c *Campaign) {},
			today: date(2026, time.June, 1),
			want:  DisplayRecruiting,
		},
		{
			name:  "window end is inclusive",
			mod:   func(c *Campaign) {},
			today: date(2026, time.June, 10),
			want:  DisplayRecruiting,
		},
		{
			name:  "after the window shows in_progress",
			mod:   func(c *Campaign) {},
			today: date(2026, time.June, 11),
			want:  DisplayInProgress,
		},
		{
			name:  "content end is the last in_progress day",
			mod:   func(c *Campaign) {},
			today: date(2026, time.June, 30),
			want:  DisplayInProgress,
		},
		{
			name:  "between content end and results shows approved",
			mod:   func(c *Campaign) {},
			today: date(2026, time.July, 2),
			want:  DisplayApproved,
		},
		{
			name:  "past the results shows completed without a write",
			mod:   func(c *Campaign) {},
			today: date(2026, time.July, 6),
			want:  DisplayCompleted,
		},
		{
			name:  "suspended mirrors the persisted status",
			mod:   func(c *Campaign) { c.Status = StatusSuspended },
			today: date(2026, time.June, 5),
			want:  DisplaySuspended,
		},
		{
			name:  "no dates at all shows recruiting once paid",
			mod: func(c *Campaign) {
				c.ApplicationStart = Date{}
				c.ApplicationEnd = Date{}
				c.ContentStart = Date{}
				c.ContentEnd = Date{}
				c.Announcement = Date{}
				c.ResultAnnouncement = Date{}
			},
			today: date(2026, time.June, 5),
			want:  DisplayRecruiting,
		},
		{
			name: "inverted window contains no date",
			mod: func(c *Campaign) {
				c.ApplicationStart = date(2026, time.June, 10)
				c.ApplicationEnd = date(2026, time.June, 1)
			},
			today: date(2026, time.June, 5),
			want:  DisplayApproved,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := schedule()
			tt.mod(&c)
			got := ResolveDisplay(c, tt.today)
			if got != tt.want {
				t.Fatalf("ResolveDisplay = %q, want %q", got, tt.want)
			}
			// Admission and the recruiting display always agree.
			if CanApply(c, tt.today) != (got == DisplayRecruiting) {
				t.Fatalf("CanApply = %v disagrees with display %q", CanApply(c, tt.today), got)
			}
		})
	}
}

func TestCanApply(t *testing.T) {
	inWindow := date(2026, time.June, 5)

	c := schedule()
	if !CanApply(c, inWindow) {
		t.Fatal("expected approved paid campaign inside the window to accept applications")
	}

	c = schedule()
	c.Status = StatusPending
	if CanApply(c, inWindow) {
		t.Fatal("pending campaign must not accept applications")
	}

	c = schedule()
	c.PaymentStatus = PaymentUnpaid
	if CanApply(c, inWindow) {
		t.Fatal("unpaid campaign must not accept applications")
	}

	c = schedule()
	c.Status = StatusSuspended
	if CanApply(c, inWindow) {
		t.Fatal("suspended campaign must not accept applications")
	}

	c = schedule()
	if CanApply(c, date(2026, time.June, 11)) {
		t.Fatal("applications must close the day after the window end")
	}
}

func TestReviewWindowOpen(t *testing.T) {
	c := schedule()

	if ReviewWindowOpen(c, date(2026, time.June, 14)) {
		t.Fatal("window must not open before the content start")
	}
	if !ReviewWindowOpen(c, date(2026, time.June, 15)) {
		t.Fatal("window opens on the content start date")
	}
	if !ReviewWindowOpen(c, date(2026, time.July, 8)) {
		t.Fatal("window stays open three days past the result announcement")
	}
	if ReviewWindowOpen(c, date(2026, time.July, 9)) {
		t.Fatal("window closes four days past the result announcement")
	}

	c.ContentStart = Date{}
	c.ResultAnnouncement = Date{}
	if !ReviewWindowOpen(c, date(2030, time.January, 1)) {
		t.Fatal("unset bounds must not constrain the window")
	}
}
