package app

import "bolt/internal/domain"

// App holds the services commands run against.
type App struct {
	IDs domain.IdentityService
}

// New returns an App with the given services.
func New(ids domain.IdentityService) *App {
	return &App{IDs: ids}
}
