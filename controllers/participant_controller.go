package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vnkhanh/quiz-festif-backend/models"
	"github.com/vnkhanh/quiz-festif-backend/services"
	"gorm.io/gorm"
)

type AnswerInput struct {
	QuestionID          uuid.UUID `json:"question_id" binding:"required"`
	SelectedOptionIndex *int      `json:"selected_option_index" binding:"required"`
}

type ParticipateInput struct {
	ParticipantName string        `json:"participant_name" binding:"required,min=2,max=100"`
	Answers         []AnswerInput `json:"answers" binding:"required,min=1"`
}

// Nộp bài quiz (public, không cần đăng nhập)
func Participate(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	quizID := c.Param("id")

	var input ParticipateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	var quiz models.Quiz
	if err := db.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		First(&quiz, "id = ?", quizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	answers := make([]models.SubmittedAnswer, 0, len(input.Answers))
	for _, a := range input.Answers {
		answers = append(answers, models.SubmittedAnswer{
			QuestionID:          a.QuestionID,
			SelectedOptionIndex: *a.SelectedOptionIndex,
		})
	}

	// Chấm bài: câu trả lời trỏ tới câu hỏi không còn tồn tại bị bỏ qua,
	// total luôn là số câu hiện có của quiz
	score, results, kept := services.ScoreSubmission(&quiz, answers)
	totalQuestions := len(quiz.Questions)

	participant := models.Participant{
		QuizID:          quiz.ID,
		ParticipantName: input.ParticipantName,
		Score:           score,
		TotalQuestions:  totalQuestions,
		Answers:         kept,
		CompletedAt:     time.Now(),
	}
	if err := db.Create(&participant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lưu lượt tham gia"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"participation": gin.H{
			"id":               participant.ID,
			"quiz_id":          quiz.ID,
			"participant_name": participant.ParticipantName,
			"score":            participant.Score,
			"total_questions":  participant.TotalQuestions,
			"percentage":       services.Percentage(score, totalQuestions),
			"completed_at":     participant.CompletedAt.Format(time.RFC3339),
			"results":          results,
		},
	})
}

// Xem kết quả một lượt tham gia (public, cho trang kết quả).
// Kết quả từng câu được chấm lại theo bộ câu hỏi hiện tại của quiz.
func GetParticipation(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	participationID := c.Param("id")

	var participant models.Participant
	if err := db.
		Preload("Quiz").
		Preload("Quiz.Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		First(&participant, "id = ?", participationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy lượt tham gia", "code": "NOT_FOUND"})
		return
	}

	results := services.RegradeParticipation(&participant.Quiz, &participant)

	c.JSON(http.StatusOK, gin.H{
		"participation": gin.H{
			"id":               participant.ID,
			"quiz_title":       participant.Quiz.Title,
			"participant_name": participant.ParticipantName,
			"score":            participant.Score,
			"total_questions":  participant.TotalQuestions,
			"percentage":       services.Percentage(participant.Score, participant.TotalQuestions),
			"completed_at":     participant.CompletedAt.Format(time.RFC3339),
			"results":          results,
		},
	})
}

// Xem chi tiết lượt tham gia (chỉ chủ sở hữu quiz)
func GetParticipationDetails(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	participationID := c.Param("id")

	var participant models.Participant
	if err := db.
		Preload("Quiz").
		Preload("Quiz.Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		First(&participant, "id = ?", participationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy lượt tham gia", "code": "NOT_FOUND"})
		return
	}

	// Chỉ chủ sở hữu quiz được xem chi tiết
	if participant.Quiz.UserID.String() != userIDStr {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền xem chi tiết lượt tham gia này", "code": "FORBIDDEN"})
		return
	}

	results := services.RegradeParticipation(&participant.Quiz, &participant)

	c.JSON(http.StatusOK, gin.H{
		"participation": gin.H{
			"id":               participant.ID,
			"quiz_title":       participant.Quiz.Title,
			"participant_name": participant.ParticipantName,
			"score":            participant.Score,
			"total_questions":  participant.TotalQuestions,
			"percentage":       services.Percentage(participant.Score, participant.TotalQuestions),
			"completed_at":     participant.CompletedAt.Format(time.RFC3339),
			"results":          results,
		},
	})
}
