package activity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/statbook-lambda/internal/utils"
)

type TrackDTO struct {
	SessionID string          `json:"session_id"`
	Action    Action          `json:"action"`
	PagePath  string          `json:"page_path"`
	Element   string          `json:"element"`
	Value     string          `json:"value"`
	Metadata  json.RawMessage `json:"metadata"`
}

type TrackResponse struct {
	Success bool      `json:"success"`
	ID      uuid.UUID `json:"id"`
}

type VisitResponse struct {
	ID        uuid.UUID          `json:"id"`
	NetID     string             `json:"net_id,omitempty"`
	SessionID string             `json:"session_id,omitempty"`
	Action    Action             `json:"action"`
	PagePath  string             `json:"page_path"`
	Element   string             `json:"element,omitempty"`
	Value     string             `json:"value,omitempty"`
	Metadata  json.RawMessage    `json:"metadata,omitempty"`
	VisitedAt util.LocalDateTime `json:"visited_at"`
}

type ActivityReport struct {
	RecentActivity      []VisitResponse `json:"recent_activity"`
	TodayActivityByType []ActionCount   `json:"today_activity_by_type"`
	TodayPageViews      []PageCount     `json:"today_page_views"`
	Timestamp           time.Time       `json:"timestamp"`
}

type StudentStats struct {
	NetID            string             `json:"net_id"`
	Visits           int64              `json:"visits"`
	QuizzesCompleted int64              `json:"quizzes_completed"`
	AverageAccuracy  float64            `json:"average_accuracy"`
	LastSeen         util.LocalDateTime `json:"last_seen"`
}

type StatsReport struct {
	Students      []StudentStats `json:"students"`
	TotalStudents int            `json:"total_students"`
}
