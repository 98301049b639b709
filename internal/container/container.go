package container

import (
	"context"

	"github.com/saulo-duarte/statbook-lambda/internal/activity"
	"github.com/saulo-duarte/statbook-lambda/internal/aiquiz"
	"github.com/saulo-duarte/statbook-lambda/internal/auth"
	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
	"github.com/saulo-duarte/statbook-lambda/internal/game"
	util "github.com/saulo-duarte/statbook-lambda/internal/utils"
)

type Container struct {
	Settings          config.Settings
	ContentContainer  *content.Container
	ActivityContainer *activity.Container
	AIQuizContainer   *aiquiz.AIQuizContainer
	GameContainer     *game.Container
	AuthHandler       *auth.Handler
}

// New initializes the process-wide state and wires every feature. Background
// workers stop when ctx is cancelled.
func New(ctx context.Context) *Container {
	settings := config.Load()

	config.InitLogger()
	auth.Init()
	config.InitCrypto()

	log := config.WithContext(ctx)
	if err := util.SetLocation(settings.Timezone); err != nil {
		log.WithError(err).Warn("Unknown campus time zone, keeping default")
	}

	if err := config.Connect(ctx, settings.DatabaseDSN); err != nil {
		log.WithError(err).Warn("Database unavailable, falling back to in-memory stores")
	}

	contentContainer := content.NewContainer()
	activityContainer := activity.NewContainer(config.DB)
	aiQuizContainer := aiquiz.NewAIQuizContainer(settings)

	gameContainer := game.NewContainer(
		ctx,
		settings,
		contentContainer.Service,
		aiQuizContainer.Service,
		activityContainer.Service,
	)

	return &Container{
		Settings:          settings,
		ContentContainer:  contentContainer,
		ActivityContainer: activityContainer,
		AIQuizContainer:   aiQuizContainer,
		GameContainer:     gameContainer,
		AuthHandler:       auth.NewHandler(settings),
	}
}

// Close releases what New acquired.
func (c *Container) Close() {
	c.GameContainer.Registry.Close()
	if config.DB != nil {
		if sqlDB, err := config.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
