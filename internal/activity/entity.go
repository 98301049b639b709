package activity

import (
	"github.com/google/uuid"
	util "github.com/saulo-duarte/statbook-lambda/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Visit is one tracked interaction. The NetID is stored encrypted and looked
// up through its keyed hash.
type Visit struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	NetIDCipher string             `gorm:"column:net_id_cipher;type:text" json:"-"`
	NetIDHash   string             `gorm:"column:net_id_hash;type:varchar(64);index" json:"-"`
	SessionID   string             `gorm:"type:varchar(64);index" json:"session_id,omitempty"`
	Action      Action             `gorm:"type:varchar(32);index;not null" json:"action"`
	PagePath    string             `gorm:"type:varchar(255);index" json:"page_path"`
	Element     string             `gorm:"type:varchar(255)" json:"element,omitempty"`
	Value       string             `gorm:"type:text" json:"value,omitempty"`
	Metadata    datatypes.JSON     `json:"metadata,omitempty"`
	VisitedAt   util.LocalDateTime `gorm:"type:timestamptz;index;not null" json:"visited_at"`
}

func (Visit) TableName() string {
	return "student_visits"
}

func (v *Visit) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

type ActionCount struct {
	Action Action `json:"action"`
	Count  int64  `json:"count"`
}

type PageCount struct {
	PagePath string `json:"page_path"`
	Count    int64  `json:"count"`
}

// StudentRow aggregates the visits of one NetID.
type StudentRow struct {
	NetIDHash        string
	NetIDCipher      string
	Visits           int64
	QuizzesCompleted int64
	AverageAccuracy  float64
	LastSeen         util.LocalDateTime
}
