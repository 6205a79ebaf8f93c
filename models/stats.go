package models

import "github.com/google/uuid"

// Các DTO dẫn xuất từ việc chấm bài, không lưu DB

type AnswerResult struct {
	QuestionID          uuid.UUID  `json:"question_id"`
	QuestionText        string     `json:"question_text"`
	SelectedOptionIndex int        `json:"selected_option_index"`
	CorrectOptionIndex  int        `json:"correct_option_index"`
	IsCorrect           bool       `json:"is_correct"`
	Options             StringList `json:"options"`
}

type ParticipantSummary struct {
	ID              uuid.UUID `json:"id"`
	ParticipantName string    `json:"participant_name"`
	Score           int       `json:"score"`
	TotalQuestions  int       `json:"total_questions"`
	Percentage      float64   `json:"percentage"`
	CompletedAt     string    `json:"completed_at"`
}

type MissedQuestion struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	MissCount    int       `json:"miss_count"`
}

type QuizStats struct {
	ParticipantCount   int                  `json:"participantCount"`
	AverageScore       float64              `json:"averageScore"`
	AveragePercentage  float64              `json:"averagePercentage"`
	MostMissedQuestion *MissedQuestion      `json:"mostMissedQuestion"`
	Participants       []ParticipantSummary `json:"participants"`
}
