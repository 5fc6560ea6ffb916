package out

import (
	"context"
	"net/url"
	"time"

	"mindbloom/internal/modules/subscription/domain"
	subscriptionout "mindbloom/internal/modules/subscription/port/out"
	"mindbloom/internal/platform/httpx"
)

type HTTPSubscriptionClient struct {
	client  *httpx.Client
	baseURL string
}

func NewHTTPSubscriptionClient(client *httpx.Client, baseURL string) subscriptionout.SubscriptionClient {
	return &HTTPSubscriptionClient{client: client, baseURL: baseURL}
}

type wireStatus struct {
	UserID              string  `json:"user_id"`
	Plan                string  `json:"plan"`
	Status              string  `json:"status"`
	HasAccess           bool    `json:"has_access"`
	IsTrial             bool    `json:"is_trial"`
	DaysLeft            int     `json:"days_left"`
	TrialEndDate        *string `json:"trial_end_date"`
	SubscriptionEndDate *string `json:"subscription_end_date"`
}

type activateBody struct {
	UserID string `json:"user_id"`
	Action string `json:"action"`
}

type activateEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *HTTPSubscriptionClient) FetchStatus(ctx context.Context, userID string) (domain.Status, error) {
	query := url.Values{}
	query.Set("user_id", userID)

	var w wireStatus
	if err := c.client.GetJSON(ctx, c.baseURL, query, &w); err != nil {
		return domain.Status{}, err
	}
	return domain.Status{
		UserID:              w.UserID,
		Plan:                domain.Plan(w.Plan),
		Lifecycle:           domain.LifecycleStatus(w.Status),
		HasAccess:           w.HasAccess,
		IsTrial:             w.IsTrial,
		DaysLeft:            w.DaysLeft,
		TrialEndDate:        parseWireDate(w.TrialEndDate),
		SubscriptionEndDate: parseWireDate(w.SubscriptionEndDate),
	}, nil
}

// Activate returns the backend acknowledgement only; the caller follows
// up with FetchStatus because the activate payload is partial.
func (c *HTTPSubscriptionClient) Activate(ctx context.Context, userID string) (bool, string, error) {
	var envelope activateEnvelope
	err := c.client.PostJSON(ctx, c.baseURL, activateBody{UserID: userID, Action: "activate"}, &envelope)
	if err != nil {
		return false, "", err
	}
	return envelope.Success, envelope.Message, nil
}

func parseWireDate(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02"} {
		if t, err := time.Parse(layout, *raw); err == nil {
			return &t
		}
	}
	return nil
}
