package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the identity of the actor behind a request.
// HTTP requests from the dashboard run with an empty scope; Telegram
// callbacks carry the user behind the button press.
type Scope struct {
	UserID   string
	Username string
}
