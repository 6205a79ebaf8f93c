package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/quiz-festif-backend/models"
	"github.com/vnkhanh/quiz-festif-backend/services"
	"gorm.io/gorm"
)

// ==== DASHBOARD QUẢN TRỊ ====

// Danh sách toàn bộ user (admin)
func AdminListUsers(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var users []models.User
	if err := db.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách người dùng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Danh sách toàn bộ quiz kèm người tạo (admin)
func AdminListQuizzes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var quizzes []models.Quiz
	if err := db.Preload("User").Order("created_at DESC").Find(&quizzes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách quiz"})
		return
	}

	formatted := make([]gin.H, 0, len(quizzes))
	for _, quiz := range quizzes {
		formatted = append(formatted, gin.H{
			"id":    quiz.ID,
			"title": quiz.Title,
			"creator": gin.H{
				"id":           quiz.User.ID,
				"display_name": quiz.User.FullName,
				"email":        quiz.User.Email,
			},
			"created_at": quiz.CreatedAt,
			"updated_at": quiz.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": formatted})
}

// Chi tiết quiz kèm câu hỏi và đáp án (admin)
func AdminQuizDetail(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{
		"quiz": gin.H{
			"id":    quiz.ID,
			"title": quiz.Title,
			"creator": gin.H{
				"id":           quiz.User.ID,
				"display_name": quiz.User.FullName,
				"email":        quiz.User.Email,
			},
			"questions":  quiz.Questions,
			"created_at": quiz.CreatedAt,
			"updated_at": quiz.UpdatedAt,
		},
	})
}

// Danh sách toàn bộ lượt tham gia (admin)
func AdminListParticipations(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var participations []models.Participant
	if err := db.Preload("Quiz").Order("completed_at DESC").Find(&participations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách lượt tham gia"})
		return
	}

	formatted := make([]gin.H, 0, len(participations))
	for _, p := range participations {
		formatted = append(formatted, gin.H{
			"id":               p.ID,
			"participant_name": p.ParticipantName,
			"quiz": gin.H{
				"id":    p.Quiz.ID,
				"title": p.Quiz.Title,
			},
			"score":           p.Score,
			"total_questions": p.TotalQuestions,
			"percentage":      services.Percentage(p.Score, p.TotalQuestions),
			"completed_at":    p.CompletedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"participations": formatted})
}

// Lời nhắn của một user theo public key (admin hoặc chính chủ)
func AdminListUserMessages(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	publicKey := c.Param("publicKey")

	var target models.User
	if err := db.Where("public_key = ?", publicKey).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng", "code": "NOT_FOUND"})
		return
	}

	// Admin hoặc chính chủ mới được xem
	role := c.GetString("role")
	userID := c.GetString("user_id")
	if role != string(models.RoleAdmin) && userID != target.ID.String() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền xem lời nhắn của người dùng này", "code": "FORBIDDEN"})
		return
	}

	var messages []models.AnonymousMessage
	if err := db.
		Where("recipient_id = ?", target.ID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách lời nhắn"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":           target.ID,
			"display_name": target.FullName,
			"public_key":   target.PublicKey,
		},
		"messages": messages,
	})
}
