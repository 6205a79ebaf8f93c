package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/quiz-festif-backend/models"
	"gorm.io/gorm"
)

type CreateMessageInput struct {
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

// Gửi lời nhắn ẩn danh cho user qua public key (public, không đăng nhập)
func SendAnonymousMessage(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	publicKey := c.Param("publicKey")

	var recipient models.User
	if err := db.Where("public_key = ?", publicKey).First(&recipient).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng", "code": "NOT_FOUND"})
		return
	}

	var input CreateMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}

	message := models.AnonymousMessage{
		RecipientID: recipient.ID,
		Content:     input.Content,
	}
	if err := db.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể gửi lời nhắn"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Đã gửi lời nhắn",
		"data": gin.H{
			"id":         message.ID,
			"created_at": message.CreatedAt,
		},
	})
}

// Danh sách lời nhắn đã nhận (của user đang đăng nhập)
func GetMessages(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID := c.GetString("user_id")

	var messages []models.AnonymousMessage
	if err := db.
		Where("recipient_id = ?", userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể lấy danh sách lời nhắn"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// Xem một lời nhắn
func GetMessage(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID := c.GetString("user_id")
	messageID := c.Param("id")

	var message models.AnonymousMessage
	if err := db.
		Where("id = ? AND recipient_id = ?", messageID, userID).
		First(&message).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy lời nhắn", "code": "NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Xoá lời nhắn (chỉ người nhận)
func DeleteMessage(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID := c.GetString("user_id")
	messageID := c.Param("id")

	var message models.AnonymousMessage
	if err := db.
		Where("id = ? AND recipient_id = ?", messageID, userID).
		First(&message).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy lời nhắn", "code": "NOT_FOUND"})
		return
	}

	if err := db.Delete(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xoá lời nhắn"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Đã xoá lời nhắn"})
}
