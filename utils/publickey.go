package utils

import (
	"fmt"
	"math/rand"

	"github.com/gosimple/slug"
)

// GeneratePublicKey tạo khoá công khai cho user: slug của tên hiển thị kèm
// 6 chữ số ngẫu nhiên, ví dụ "nguyen-van-an-583204". Dùng cho link nhận lời
// nhắn ẩn danh nên không được lộ email.
func GeneratePublicKey(displayName string) string {
	s := slug.Make(displayName)
	if s == "" {
		s = "user"
	}
	if len(s) > 40 {
		s = s[:40]
	}
	return fmt.Sprintf("%s-%06d", s, rand.Intn(1000000))
}

// DefaultAvatar trả về URL avatar dicebear ngẫu nhiên cho tài khoản mới
func DefaultAvatar() string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	seed := make([]byte, 8)
	for i := range seed {
		seed[i] = letters[rand.Intn(len(letters))]
	}
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", seed)
}
