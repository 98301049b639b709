package activity

import (
	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

// NewContainer stores visits in Postgres when db is set and in memory otherwise.
func NewContainer(db *gorm.DB) *Container {
	log := config.Logger

	var repo Repository
	if db != nil {
		if err := Migrate(db); err != nil {
			log.WithError(err).Error("Failed to migrate student_visits, using in-memory activity store")
			repo = NewMemoryRepository()
		} else {
			repo = NewRepository(db)
		}
	} else {
		log.Warn("No database configured, activity is kept in memory")
		repo = NewMemoryRepository()
	}

	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
