package domain

// ResolveStatus computes the effective persisted status of a campaign as
// of today. It is pure and total: unknown or missing dates degrade to "no
// constraint" and the stored status is returned unchanged for every state
// the date logic may not touch.
//
// Rules, first match wins:
//  1. pending stays pending until an administrator approves, whatever the
//     dates say.
//  2. an unpaid campaign makes no forward progress.
//  3. suspended and cancelled are manual states and are never overwritten.
//  4. completed is absorbing.
//  5. once paid and approved, the day after the result announcement the
//     campaign completes by date alone.
//  6. everything else rests on approved; only the display differs.
func ResolveStatus(c Campaign, today Date) CampaignStatus {
	if c.Status == StatusPending {
		return StatusPending
	}
	if c.PaymentStatus != PaymentPaid {
		return c.Status
	}
	if c.Status == StatusSuspended || c.Status == StatusCancelled {
		return c.Status
	}
	if c.Status == StatusCompleted {
		return StatusCompleted
	}
	if !c.ResultAnnouncement.IsZero() && today.After(c.ResultAnnouncement) {
		return StatusCompleted
	}
	return StatusApproved
}

// ResolveDisplay computes the presentation-facing phase of a campaign as
// of today. For every resolved status other than approved the display
// mirrors the persisted status; an approved campaign is shown as pending
// until paid, recruiting inside the application window, in_progress
// between the application end and the content end, and approved otherwise.
func ResolveDisplay(c Campaign, today Date) DisplayStatus {
	status := ResolveStatus(c, today)
	if status != StatusApproved {
		return DisplayStatus(status)
	}
	if c.PaymentStatus != PaymentPaid {
		return DisplayPending
	}
	if withinWindow(today, c.ApplicationStart, c.ApplicationEnd) {
		return DisplayRecruiting
	}
	if !c.ApplicationEnd.IsZero() && today.After(c.ApplicationEnd) {
		if c.ContentEnd.IsZero() || !today.After(c.ContentEnd) {
			return DisplayInProgress
		}
	}
	return DisplayApproved
}

// CanApply reports whether an influencer may apply to the campaign today.
// It holds exactly when ResolveDisplay yields recruiting: the campaign is
// approved and paid and today falls inside the application window.
func CanApply(c Campaign, today Date) bool {
	if ResolveStatus(c, today) != StatusApproved {
		return false
	}
	if c.PaymentStatus != PaymentPaid {
		return false
	}
	return withinWindow(today, c.ApplicationStart, c.ApplicationEnd)
}

// withinWindow reports whether today falls inside [start, end], both ends
// inclusive. A zero bound is open on that side. A window whose start is
// after its end contains no date at all.
func withinWindow(today, start, end Date) bool {
	if !start.IsZero() && today.Before(start) {
		return false
	}
	if !end.IsZero() && today.After(end) {
		return false
	}
	return true
}
