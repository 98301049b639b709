package activity

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, v *Visit) error
	Recent(ctx context.Context, limit, offset int) ([]Visit, error)
	CountByAction(ctx context.Context, since time.Time) ([]ActionCount, error)
	TopPages(ctx context.Context, since time.Time, limit int) ([]PageCount, error)
	Students(ctx context.Context) ([]StudentRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Migrate creates or updates the visits table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Visit{})
}

func (r *repository) Create(ctx context.Context, v *Visit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) Recent(ctx context.Context, limit, offset int) ([]Visit, error) {
	var visits []Visit
	err := r.db.WithContext(ctx).
		Order("visited_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *repository) CountByAction(ctx context.Context, since time.Time) ([]ActionCount, error) {
	var counts []ActionCount
	err := r.db.WithContext(ctx).
		Model(&Visit{}).
		Select("action, COUNT(*) AS count").
		Where("visited_at >= ?", since).
		Group("action").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *repository) TopPages(ctx context.Context, since time.Time, limit int) ([]PageCount, error) {
	var pages []PageCount
	err := r.db.WithContext(ctx).
		Model(&Visit{}).
		Select("page_path, COUNT(*) AS count").
		Where("visited_at >= ? AND action = ?", since, ActionPageView).
		Group("page_path").
		Order("count DESC").
		Limit(limit).
		Scan(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *repository) Students(ctx context.Context) ([]StudentRow, error) {
	var rows []StudentRow
	err := r.db.WithContext(ctx).
		Model(&Visit{}).
		Select(`net_id_hash,
			MAX(net_id_cipher) AS net_id_cipher,
			COUNT(*) AS visits,
			COUNT(*) FILTER (WHERE action = ?) AS quizzes_completed,
			COALESCE(AVG((metadata->>'accuracy')::numeric) FILTER (
				WHERE action = ? AND jsonb_typeof(metadata->'accuracy') = 'number'), 0) AS average_accuracy,
			MAX(visited_at) AS last_seen`, ActionQuizComplete, ActionQuizComplete).
		Where("net_id_hash <> ''").
		Group("net_id_hash").
		Order("last_seen DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
