package models

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousMessage là lời nhắn ẩn danh gửi cho một user qua public key
type AnonymousMessage struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipient_id"`
	Recipient   User      `gorm:"foreignKey:RecipientID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`

	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
