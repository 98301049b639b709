package activity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/saulo-duarte/statbook-lambda/internal/config"
	util "github.com/saulo-duarte/statbook-lambda/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
	topPages     = 10
)

var (
	ErrInvalidAction   = errors.New("invalid action")
	ErrPathRequired    = errors.New("page_path required")
	ErrInvalidMetadata = errors.New("metadata must be a JSON object")
	ErrReservedAction  = errors.New("action is recorded by the server only")
)

type Service interface {
	// Track stores a visit reported by a browser.
	Track(ctx context.Context, netID string, dto TrackDTO) (*Visit, error)
	// Record stores a visit produced by the server itself, quiz completions included.
	Record(ctx context.Context, netID string, dto TrackDTO) (*Visit, error)
	RecentActivity(ctx context.Context, limit, offset int) ([]VisitResponse, error)
	TodayByAction(ctx context.Context) ([]ActionCount, error)
	TodayTopPages(ctx context.Context) ([]PageCount, error)
	Report(ctx context.Context, limit, offset int) (*ActivityReport, error)
	StudentStats(ctx context.Context) (*StatsReport, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// NormalizeNetID lowercases and trims a campus NetID.
func NormalizeNetID(netID string) string {
	return strings.ToLower(strings.TrimSpace(netID))
}

func (s *service) Track(ctx context.Context, netID string, dto TrackDTO) (*Visit, error) {
	if dto.Action == ActionQuizComplete {
		return nil, fmt.Errorf("%w: %q", ErrReservedAction, dto.Action)
	}
	return s.Record(ctx, netID, dto)
}

func (s *service) Record(ctx context.Context, netID string, dto TrackDTO) (*Visit, error) {
	log := config.WithContext(ctx)

	if !dto.Action.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, dto.Action)
	}
	if strings.TrimSpace(dto.PagePath) == "" {
		return nil, ErrPathRequired
	}
	if len(dto.Metadata) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(dto.Metadata, &obj); err != nil {
			return nil, ErrInvalidMetadata
		}
	}
	// Student stats average this field, so it must be a number.
	if dto.Action == ActionQuizComplete {
		if _, ok := accuracyOf(dto.Metadata); !ok {
			return nil, fmt.Errorf("%w: quiz_complete needs a numeric accuracy", ErrInvalidMetadata)
		}
	}

	visit := Visit{
		SessionID: dto.SessionID,
		Action:    dto.Action,
		PagePath:  dto.PagePath,
		Element:   dto.Element,
		Value:     dto.Value,
		Metadata:  datatypes.JSON(dto.Metadata),
		VisitedAt: util.NewLocalDateTime(s.now()),
	}

	if netID = NormalizeNetID(netID); netID != "" {
		cipher, err := config.Encrypt(netID)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt NetID")
			return nil, err
		}
		visit.NetIDCipher = cipher
		visit.NetIDHash = config.Fingerprint(netID)
	}

	if err := s.repo.Create(ctx, &visit); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"action":    visit.Action,
			"page_path": visit.PagePath,
		}).Error("Failed to store visit")
		return nil, err
	}

	return &visit, nil
}

func (s *service) RecentActivity(ctx context.Context, limit, offset int) ([]VisitResponse, error) {
	limit, offset = clampPage(limit, offset)

	visits, err := s.repo.Recent(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]VisitResponse, 0, len(visits))
	for _, v := range visits {
		responses = append(responses, s.toResponse(ctx, v))
	}
	return responses, nil
}

func (s *service) TodayByAction(ctx context.Context) ([]ActionCount, error) {
	return s.repo.CountByAction(ctx, util.StartOfDay(s.now()))
}

func (s *service) TodayTopPages(ctx context.Context) ([]PageCount, error) {
	return s.repo.TopPages(ctx, util.StartOfDay(s.now()), topPages)
}

func (s *service) Report(ctx context.Context, limit, offset int) (*ActivityReport, error) {
	recent, err := s.RecentActivity(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	byAction, err := s.TodayByAction(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity by action: %w", err)
	}
	pages, err := s.TodayTopPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("page views: %w", err)
	}

	return &ActivityReport{
		RecentActivity:      recent,
		TodayActivityByType: byAction,
		TodayPageViews:      pages,
		Timestamp:           s.now().UTC(),
	}, nil
}

func (s *service) StudentStats(ctx context.Context) (*StatsReport, error) {
	rows, err := s.repo.Students(ctx)
	if err != nil {
		return nil, err
	}

	students := make([]StudentStats, 0, len(rows))
	for _, row := range rows {
		students = append(students, StudentStats{
			NetID:            s.reveal(ctx, row.NetIDCipher),
			Visits:           row.Visits,
			QuizzesCompleted: row.QuizzesCompleted,
			AverageAccuracy:  row.AverageAccuracy,
			LastSeen:         row.LastSeen,
		})
	}

	return &StatsReport{Students: students, TotalStudents: len(students)}, nil
}

// reveal decrypts a stored NetID. Rows written under another key come back
// empty instead of failing the whole report.
func (s *service) reveal(ctx context.Context, cipher string) string {
	if cipher == "" {
		return ""
	}
	netID, err := config.Decrypt(cipher)
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Failed to decrypt NetID")
		return ""
	}
	return netID
}

func (s *service) toResponse(ctx context.Context, v Visit) VisitResponse {
	return VisitResponse{
		ID:        v.ID,
		NetID:     s.reveal(ctx, v.NetIDCipher),
		SessionID: v.SessionID,
		Action:    v.Action,
		PagePath:  v.PagePath,
		Element:   v.Element,
		Value:     v.Value,
		Metadata:  json.RawMessage(v.Metadata),
		VisitedAt: v.VisitedAt,
	}
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
