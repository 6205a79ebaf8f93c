package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// StringList lưu danh sách lựa chọn dưới dạng jsonb
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return errors.New("không scan được cột options")
	}
}

type Question struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz   Quiz      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	QuestionText string     `gorm:"type:text;not null" json:"question_text"`
	Options      StringList `gorm:"type:jsonb;not null" json:"options"`

	// Luôn nằm trong [0,3] (đúng 4 lựa chọn)
	CorrectOptionIndex int `gorm:"not null" json:"correct_option_index"`
	OrderIndex         int `gorm:"not null;default:0" json:"order_index"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
