package models

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Title     string    `gorm:"size:255;not null" json:"title"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Xoá quiz sẽ xoá luôn câu hỏi và lượt tham gia (cascade)
	Questions    []Question    `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	Participants []Participant `gorm:"foreignKey:QuizID" json:"participants,omitempty"`
}
