package dto

import "time"

type StatusOutput struct {
	UserID              string
	Plan                string
	Lifecycle           string
	HasAccess           bool
	IsTrial             bool
	DaysLeft            int
	TrialEndDate        *time.Time
	SubscriptionEndDate *time.Time

	Label string
	Badge string
	CTA   string

	// InvariantNote is non-empty when the backend record contradicts the
	// documented access rule. Rendered as a diagnostics hint only.
	InvariantNote string
}

type ActivateOutput struct {
	Success bool
	Message string
	Status  StatusOutput
}
