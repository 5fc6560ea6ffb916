package domain

import (
	"fmt"
	"time"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

type LifecycleStatus string

const (
	StatusTrial   LifecycleStatus = "trial"
	StatusActive  LifecycleStatus = "active"
	StatusExpired LifecycleStatus = "expired"
)

// Status is the backend subscription record. The backend is the single
// source of truth for HasAccess and DaysLeft; the client never re-derives
// them from the dates (clock skew lives server-side).
type Status struct {
	UserID              string
	Plan                Plan
	Lifecycle           LifecycleStatus
	HasAccess           bool
	IsTrial             bool
	DaysLeft            int
	TrialEndDate        *time.Time
	SubscriptionEndDate *time.Time
}

// CheckInvariant verifies the documented access rule:
// HasAccess ⇔ Lifecycle ∈ {trial, active} ∧ (trial ⇒ DaysLeft > 0).
// A violation is reported, never silently corrected — the record stays
// authoritative and the discrepancy is surfaced for diagnostics.
func (s Status) CheckInvariant() error {
	expected := (s.Lifecycle == StatusTrial && s.DaysLeft > 0) ||
		s.Lifecycle == StatusActive
	if s.HasAccess != expected {
		return fmt.Errorf("subscription record violates access invariant: status=%s days_left=%d has_access=%t",
			s.Lifecycle, s.DaysLeft, s.HasAccess)
	}
	return nil
}

type PlanLabel string

const (
	LabelTrial PlanLabel = "trial"
	LabelPro   PlanLabel = "pro"
	LabelFree  PlanLabel = "free"
)

type BadgeState string

const (
	BadgeTrialActive BadgeState = "trial-active"
	BadgeProActive   BadgeState = "pro-active"
	BadgeExpired     BadgeState = "expired"
)

type CallToAction string

const (
	CTANone       CallToAction = "none"
	CTAStartTrial CallToAction = "start-trial"
)

// Display is the render-ready classification of a subscription record.
type Display struct {
	Label PlanLabel
	Badge BadgeState
	CTA   CallToAction
}

// EvaluateAccess classifies a record for display. The start-trial CTA is
// hidden exactly when the subscription is active; trial and expired users
// both see it, so re-activation after expiry stays possible.
func EvaluateAccess(s Status) Display {
	d := Display{}

	switch {
	case s.IsTrial:
		d.Label = LabelTrial
	case s.Plan == PlanPro:
		d.Label = LabelPro
	default:
		d.Label = LabelFree
	}

	switch s.Lifecycle {
	case StatusTrial:
		d.Badge = BadgeTrialActive
	case StatusActive:
		d.Badge = BadgeProActive
	default:
		d.Badge = BadgeExpired
	}
	if !s.HasAccess {
		d.Badge = BadgeExpired
	}

	if s.Lifecycle == StatusActive {
		d.CTA = CTANone
	} else {
		d.CTA = CTAStartTrial
	}
	return d
}
