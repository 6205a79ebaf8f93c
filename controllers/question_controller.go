package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/quiz-festif-backend/models"
	"gorm.io/gorm"
)

type CreateQuestionInput struct {
	QuestionText       string   `json:"question_text" binding:"required,min=5,max=500"`
	Options            []string `json:"options" binding:"required,len=4,dive,min=1,max=200"`
	CorrectOptionIndex *int     `json:"correct_option_index" binding:"required"`
}

type UpdateQuestionInput struct {
	QuestionText       string   `json:"question_text" binding:"omitempty,min=5,max=500"`
	Options            []string `json:"options" binding:"omitempty,len=4,dive,min=1,max=200"`
	CorrectOptionIndex *int     `json:"correct_option_index"`
}

// Thêm câu hỏi vào quiz (chỉ chủ sở hữu). Câu hỏi mới luôn xếp cuối.
func CreateQuestion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	quizID := c.Param("id")

	var quiz models.Quiz
	if err := db.First(&quiz, "id = ?", quizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quiz", "code": "NOT_FOUND"})
		return
	}

	if quiz.UserID.String() != userIDStr {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền thêm câu hỏi vào quiz này", "code": "FORBIDDEN"})
		return
	}

	var input CreateQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *input.CorrectOptionIndex < 0 || *input.CorrectOptionIndex > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Index đáp án đúng phải nằm trong khoảng 0-3", "code": "VALIDATION_ERROR"})
		return
	}

	// Xác định order_index: nối vào cuối danh sách
	orderIndex := 0
	var last models.Question
	if err := db.Where("quiz_id = ?", quiz.ID).Order("order_index DESC").First(&last).Error; err == nil {
		orderIndex = last.OrderIndex + 1
	}

	question := models.Question{
		QuizID:             quiz.ID,
		QuestionText:       input.QuestionText,
		Options:            models.StringList(input.Options),
		CorrectOptionIndex: *input.CorrectOptionIndex,
		OrderIndex:         orderIndex,
	}
	if err := db.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo câu hỏi"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"question": question})
}

// Sửa câu hỏi (chủ sở hữu quiz cha). Lưu ý: sửa đáp án KHÔNG chấm lại điểm
// các lượt tham gia cũ, chỉ ảnh hưởng phần hiển thị đúng/sai và thống kê.
func UpdateQuestion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	questionID := c.Param("id")

	var question models.Question
	if err := db.Preload("Quiz").First(&question, "id = ?", questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy câu hỏi", "code": "NOT_FOUND"})
		return
	}

	// Kiểm tra quyền qua quiz cha
	if question.Quiz.UserID.String() != userIDStr {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền sửa câu hỏi này", "code": "FORBIDDEN"})
		return
	}

	var input UpdateQuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.QuestionText != "" {
		question.QuestionText = input.QuestionText
	}
	if input.Options != nil {
		question.Options = models.StringList(input.Options)
	}
	if input.CorrectOptionIndex != nil {
		if *input.CorrectOptionIndex < 0 || *input.CorrectOptionIndex > 3 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Index đáp án đúng phải nằm trong khoảng 0-3", "code": "VALIDATION_ERROR"})
			return
		}
		question.CorrectOptionIndex = *input.CorrectOptionIndex
	}

	if err := db.Save(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật câu hỏi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

// Xoá câu hỏi (chủ sở hữu quiz cha)
func DeleteQuestion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")
	questionID := c.Param("id")

	var question models.Question
	if err := db.Preload("Quiz").First(&question, "id = ?", questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy câu hỏi", "code": "NOT_FOUND"})
		return
	}

	if question.Quiz.UserID.String() != userIDStr {
		c.JSON(http.StatusForbidden, gin.H{"error": "Bạn không có quyền xoá câu hỏi này", "code": "FORBIDDEN"})
		return
	}

	if err := db.Delete(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá câu hỏi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xoá câu hỏi"})
}
