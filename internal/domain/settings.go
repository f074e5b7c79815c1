package domain

import "time"

// UserSettings is per-user account configuration. It survives across
// sessions, unlike the listing page's filter state which is ephemeral.
type UserSettings struct {
	UserID             int64        `json:"user_id"`
	Language           string       `json:"language"`
	EmailNotifications bool         `json:"email_notifications"`
	SMSNotifications   bool         `json:"sms_notifications"`
	MarketingEmails    bool         `json:"marketing_emails"`
	ProfileVisibility  string       `json:"profile_visibility"`
	AutoRespond        bool         `json:"auto_respond"`
	AutoRespondMessage string       `json:"auto_respond_message"`
	WorkingHours       WorkingHours `json:"working_hours"`
	Timezone           string       `json:"timezone"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func DefaultSettings(userID int64) UserSettings {
	return UserSettings{
		UserID:             userID,
		Language:           "lt",
		EmailNotifications: true,
		ProfileVisibility:  "public",
		WorkingHours:       WorkingHours{Start: "08:00", End: "17:00"},
		Timezone:           "Europe/Vilnius",
	}
}

type UpdateSettingsDTO struct {
	Language           *string       `json:"language" binding:"omitempty,oneof=lt en"`
	EmailNotifications *bool         `json:"email_notifications"`
	SMSNotifications   *bool         `json:"sms_notifications"`
	MarketingEmails    *bool         `json:"marketing_emails"`
	ProfileVisibility  *string       `json:"profile_visibility" binding:"omitempty,oneof=public private"`
	AutoRespond        *bool         `json:"auto_respond"`
	AutoRespondMessage *string       `json:"auto_respond_message"`
	WorkingHours       *WorkingHours `json:"working_hours"`
	Timezone           *string       `json:"timezone"`
}

type SubscriptionPlan string

const (
	PlanFree    SubscriptionPlan = "free"
	PlanPremium SubscriptionPlan = "premium"
	PlanPro     SubscriptionPlan = "pro"
)

func (p SubscriptionPlan) IsValid() bool {
	return p == PlanFree || p == PlanPremium || p == PlanPro
}

type Subscription struct {
	UserID    int64            `json:"user_id"`
	Plan      SubscriptionPlan `json:"plan"`
	UpdatedAt time.Time        `json:"updated_at"`
}
