package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vnkhanh/quiz-festif-backend/controllers"
	"github.com/vnkhanh/quiz-festif-backend/middleware"
	"gorm.io/gorm"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db))

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)

		auth.GET("/profile", middleware.AuthMiddleware(), controllers.GetProfile)
		auth.PUT("/profile", middleware.AuthMiddleware(), controllers.UpdateProfile)
		auth.PUT("/password", middleware.AuthMiddleware(), controllers.ChangePassword)
		auth.POST("/avatar", middleware.AuthMiddleware(), controllers.UploadAvatar)
	}

	// Các route public: chơi quiz, nộp bài, xem kết quả, gửi lời nhắn ẩn
	// danh. Token (nếu có) vẫn được đọc để sau này cá nhân hoá.
	pub := api.Group("")
	pub.Use(middleware.OptionalAuthMiddleware())
	{
		pub.GET("/users/:publicKey", controllers.ShowByPublicKey)
		pub.POST("/users/:publicKey/messages", controllers.SendAnonymousMessage)
		pub.GET("/quizzes/:id/play", controllers.PlayQuiz)
		pub.POST("/quizzes/:id/participate", controllers.Participate)
		pub.GET("/participations/:id", controllers.GetParticipation)
	}

	// Các route cần đăng nhập
	user := api.Group("")
	user.Use(middleware.AuthMiddleware())
	{
		// Quản lý quiz
		user.GET("/quizzes", controllers.GetQuizzes)
		user.POST("/quizzes", controllers.CreateQuiz)
		user.GET("/quizzes/:id", controllers.GetQuizDetail)
		user.PUT("/quizzes/:id", controllers.UpdateQuiz)
		user.DELETE("/quizzes/:id", controllers.DeleteQuiz)
		user.GET("/quizzes/:id/stats", controllers.GetQuizStats)
		user.GET("/quizzes/:id/participants", controllers.GetQuizParticipants)

		// Quản lý câu hỏi
		user.POST("/quizzes/:id/questions", controllers.CreateQuestion)
		user.PUT("/questions/:id", controllers.UpdateQuestion)
		user.DELETE("/questions/:id", controllers.DeleteQuestion)

		// Chi tiết lượt tham gia (chủ sở hữu quiz)
		user.GET("/participations/:id/details", controllers.GetParticipationDetails)

		// Lời nhắn ẩn danh đã nhận
		user.GET("/messages", controllers.GetMessages)
		user.GET("/messages/:id", controllers.GetMessage)
		user.DELETE("/messages/:id", controllers.DeleteMessage)

		// Admin hoặc chính chủ (kiểm tra quyền trong handler)
		user.GET("/admin/users/:publicKey/messages", controllers.AdminListUserMessages)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.RequireRoles("admin"))

		admin.GET("/users", controllers.AdminListUsers)
		admin.GET("/quizzes", controllers.AdminListQuizzes)
		admin.GET("/quizzes/:id", controllers.AdminQuizDetail)
		admin.GET("/participations", controllers.AdminListParticipations)
	}

	return r
}
