package notification

import "time"

// Subscription is a device registered for push notifications.
type Subscription struct {
	ID         string
	Endpoint   string
	P256dh     string
	Auth       string
	DeviceName string
	Active     bool
	CreatedAt  time.Time
	LastUsed   time.Time
}

// Action is one button on a notification.
type Action struct {
	Action string `json:"action"`
	Title  string `json:"title"`
}

// PayloadData carries the navigation target and, for approval
// notifications, the task the action buttons operate on.
type PayloadData struct {
	URL    string `json:"url,omitempty"`
	TaskID string `json:"taskId,omitempty"`
}

// Payload is the notification shape the clients render. Field names
// match what the service worker's push handler reads.
type Payload struct {
	Title              string      `json:"title"`
	Body               string      `json:"body"`
	Icon               string      `json:"icon,omitempty"`
	Badge              string      `json:"badge,omitempty"`
	Tag                string      `json:"tag,omitempty"`
	RequireInteraction bool        `json:"requireInteraction,omitempty"`
	Data               PayloadData `json:"data,omitempty"`
	Actions            []Action    `json:"actions,omitempty"`
}

// DefaultPayload is the base shape incomplete payloads merge over,
// mirroring the defaults the push handler applies client side.
func DefaultPayload() Payload {
	return Payload{
		Title: "Chief of Staff",
		Body:  "New notification",
		Icon:  "/icons/icon-192x192.png",
		Badge: "/icons/badge-72.png",
		Tag:   "default",
		Data:  PayloadData{URL: "/"},
		Actions: []Action{
			{Action: "view", Title: "View"},
			{Action: "dismiss", Title: "Dismiss"},
		},
	}
}

// Merge fills the payload's zero fields from defaults and returns the result.
func (p Payload) Merge(defaults Payload) Payload {
	if p.Title == "" {
		p.Title = defaults.Title
	}
	if p.Body == "" {
		p.Body = defaults.Body
	}
	if p.Icon == "" {
		p.Icon = defaults.Icon
	}
	if p.Badge == "" {
		p.Badge = defaults.Badge
	}
	if p.Tag == "" {
		p.Tag = defaults.Tag
	}
	if p.Data.URL == "" {
		p.Data.URL = defaults.Data.URL
	}
	if p.Data.TaskID == "" {
		p.Data.TaskID = defaults.Data.TaskID
	}
	if len(p.Actions) == 0 {
		p.Actions = defaults.Actions
	}
	return p
}

// --- UseCase Inputs/Outputs ---

type SubscribeInput struct {
	Endpoint   string
	P256dh     string
	Auth       string
	DeviceName string
}

type SubscribeOutput struct {
	Subscription Subscription
}
