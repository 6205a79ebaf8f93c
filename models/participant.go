package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SubmittedAnswer là câu trả lời thô được lưu lại nguyên văn khi nộp bài.
// Không lưu đúng/sai: kết quả luôn được chấm lại từ bộ câu hỏi hiện tại.
type SubmittedAnswer struct {
	QuestionID          uuid.UUID `json:"question_id"`
	SelectedOptionIndex int       `json:"selected_option_index"`
}

// AnswerList lưu danh sách câu trả lời dưới dạng jsonb
type AnswerList []SubmittedAnswer

func (a AnswerList) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AnswerList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	case nil:
		*a = nil
		return nil
	default:
		return errors.New("không scan được cột answers")
	}
}

// Participant là một lượt làm quiz đã hoàn thành. Tạo đúng một lần khi nộp
// bài, không bao giờ sửa; chỉ bị xoá khi quiz bị xoá (cascade).
type Participant struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz   Quiz      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	ParticipantName string `gorm:"size:100;not null" json:"participant_name"`

	// Score và TotalQuestions được chốt tại thời điểm nộp bài
	Score          int `gorm:"not null" json:"score"`
	TotalQuestions int `gorm:"not null" json:"total_questions"`

	Answers AnswerList `gorm:"type:jsonb" json:"answers"`

	CompletedAt time.Time `gorm:"autoCreateTime" json:"completed_at"`
}
