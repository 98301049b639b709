package game

import (
	"context"
	"time"

	"github.com/saulo-duarte/statbook-lambda/internal/aiquiz"
	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
)

const minSweepInterval = time.Minute

type Container struct {
	Handler  *Handler
	Service  Service
	Registry *Registry
}

// NewContainer starts the idle-session janitor; it stops with ctx.
func NewContainer(ctx context.Context, s config.Settings, catalog content.Service, generator aiquiz.Service, tracker Tracker) *Container {
	registry := NewRegistry(s.SessionIdleTTL, s.MaxSessions)

	every := s.SessionIdleTTL / 2
	if every < minSweepInterval {
		every = minSweepInterval
	}
	go registry.Run(ctx, every)

	service := NewService(catalog, generator, tracker, registry, Options{Dwell: s.QuizDwell})
	handler := NewHandler(service)

	return &Container{
		Handler:  handler,
		Service:  service,
		Registry: registry,
	}
}
