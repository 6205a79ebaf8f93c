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

type CreateQuizInput struct {
	Title string `json:"title" binding:"required,min=3,max=255"`
}

type UpdateQuizInput struct {
	Title string `json:"title" binding:"omitempty,min=3,max=255"`
}

// Danh sách quiz của user đang đăng nhập
func GetQuizzes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var quizzes []models.Quiz
	if err := db.
		Preload("Questions").
		Preload("Participants").
		Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách quiz"})
		return
	}

	formatted := make([]gin.H, 0, len(quizzes))
	for _, quiz := range quizzes {
		formatted = append(formatted, gin.H{
			"id":                quiz.ID,
			"title":             quiz.Title,
			"question_count":    len(quiz.Questions),
			"participant_count": len(quiz.Participants),
			"created_at":        quiz.CreatedAt,
			"updated_at":        quiz.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": formatted})
}

// Tạo quiz mới
func CreateQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var input CreateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quiz := models.Quiz{
		UserID: userUUID,
		Title:  input.Title,
	}
	if err := db.Create(&quiz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo quiz"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"quiz": gin.H{
			"id":                quiz.ID,
			"title":             quiz.Title,
			"question_count":    0,
			"participant_count": 0,
			"created_at":        quiz.CreatedAt,
		},
	})
}

// Chi tiết quiz (chỉ chủ sở hữu, kèm đáp án để chỉnh sửa)
func GetQuizDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	quizID := c.Param("id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var quiz models.Quiz
	if err := db.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Preload("Participants").
		Where("id = ? AND user_id = ?", quizID, userUUID).
		First(&quiz).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz": gin.H{
			"id":                quiz.ID,
			"title":             quiz.Title,
			"question_count":    len(quiz.Questions),
			"participant_count": len(quiz.Participants),
			"created_at":        quiz.CreatedAt,
			"questions":         quiz.Questions,
		},
	})
}

// Đổi tiêu đề quiz
func UpdateQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	quizID := c.Param("id")

	var quiz models.Quiz
	if err := db.First(&quiz, "id = ?", quizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	// Chỉ chủ sở hữu được sửa
	if quiz.UserID.String() != userIDStr {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền sửa quiz này", "code": "FORBIDDEN"})
		return
	}

	var input UpdateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != "" {
		quiz.Title = input.Title
		if err := db.Save(&quiz).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật quiz"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz": gin.H{
			"id":         quiz.ID,
			"title":      quiz.Title,
			"updated_at": quiz.UpdatedAt,
		},
	})
}

// Xoá quiz kèm toàn bộ câu hỏi và lượt tham gia
func DeleteQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	quizID := c.Param("id")

	var quiz models.Quiz
	if err := db.First(&quiz, "id = ?", quizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	if quiz.UserID.String() != userIDStr {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền xoá quiz này", "code": "FORBIDDEN"})
		return
	}

	// Xoá câu hỏi và lượt tham gia trước (phòng khi DB không bật cascade)
	if err := db.Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá câu hỏi của quiz"})
		return
	}
	if err := db.Where("quiz_id = ?", quiz.ID).Delete(&models.Participant{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá lượt tham gia của quiz"})
		return
	}
	if err := db.Delete(&quiz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá quiz"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xoá quiz"})
}

// Thống kê quiz: số người chơi, điểm trung bình, câu bị sai nhiều nhất,
// bảng xếp hạng (chỉ chủ sở hữu)
func GetQuizStats(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	quizID := c.Param("id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	// Load quiz + câu hỏi + lượt tham gia trong một lần đọc để thống kê
	// nhất quán trên cùng một snapshot
	var quiz models.Quiz
	if err := db.
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		Preload("Participants").
		Where("id = ? AND user_id = ?", quizID, userUUID).
		First(&quiz).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	stats := services.AggregateStats(&quiz, quiz.Participants)

	c.JSON(http.StatusOK, gin.H{
		"quiz": gin.H{
			"id":    quiz.ID,
			"title": quiz.Title,
		},
		"participantCount":   stats.ParticipantCount,
		"averageScore":       stats.AverageScore,
		"averagePercentage":  stats.AveragePercentage,
		"mostMissedQuestion": stats.MostMissedQuestion,
		"participants":       stats.Participants,
	})
}

// Danh sách người chơi của quiz (chỉ chủ sở hữu)
func GetQuizParticipants(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	quizID := c.Param("id")

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id không hợp lệ"})
		return
	}

	var quiz models.Quiz
	if err := db.
		Preload("Participants").
		Where("id = ? AND user_id = ?", quizID, userUUID).
		First(&quiz).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	formatted := make([]models.ParticipantSummary, 0, len(quiz.Participants))
	for _, p := range quiz.Participants {
		formatted = append(formatted, models.ParticipantSummary{
			ID:              p.ID,
			ParticipantName: p.ParticipantName,
			Score:           p.Score,
			TotalQuestions:  p.TotalQuestions,
			Percentage:      services.Percentage(p.Score, p.TotalQuestions),
			CompletedAt:     p.CompletedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"participants": formatted})
}

// Lấy quiz để chơi (public, KHÔNG trả về đáp án)
func PlayQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	quizID := c.Param("id")

	var quiz models.Quiz
	if err := db.
		Preload("User").
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("order_index ASC")
		}).
		First(&quiz, "id = ?", quizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	questions := make([]gin.H, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, gin.H{
			"id":            q.ID,
			"question_text": q.QuestionText,
			"options":       q.Options,
			// Tuyệt đối không trả correct_option_index ở đây
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz": gin.H{
			"id":           quiz.ID,
			"title":        quiz.Title,
			"creator_name": quiz.User.FullName,
			"questions":    questions,
		},
	})
}
