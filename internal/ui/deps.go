// Package ui provides the GTK4 presentation layer of bmb.
package ui

import (
	"context"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/bootstrap"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/profile"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to UI components.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config
	// ConfigManager enables hot reload of key bindings and the window title. Optional.
	ConfigManager *config.Manager

	Identities *profile.Set
	// Profile was opened before GTK started. Nil shows the chooser.
	Profile    *usecase.OpenedProfile
	InitialURL string
	Pages      bootstrap.Pages

	OpenProfileUC *usecase.OpenProfileUseCase
	FileSystem    port.FileSystem
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Identities == nil {
		return ErrMissingDependency("Identities")
	}
	if d.Profile == nil && d.OpenProfileUC == nil {
		return ErrMissingDependency("OpenProfileUC")
	}
	return nil
}

// DependencyError represents a missing dependency error.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates an error for a missing dependency.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
