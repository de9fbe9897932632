package model

// Scope carries the authenticated caller identity through the request.
type Scope struct {
	UserID string
}

// Environment names for runtime behavior switches.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
