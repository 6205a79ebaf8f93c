package services

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vnkhanh/quiz-festif-backend/models"
)

// AggregateStats tổng hợp thống kê của một quiz từ toàn bộ lượt tham gia.
//
// Đúng/sai từng câu được chấm lại từ câu trả lời đã lưu và bộ câu hỏi hiện
// tại (cùng logic với RegradeParticipation); riêng score/total_questions thì
// đọc từ bản ghi Participant. Caller phải truyền quiz.Questions theo đúng
// order_index và cùng một snapshot cho cả lượt gọi.
func AggregateStats(quiz *models.Quiz, participants []models.Participant) models.QuizStats {
	stats := models.QuizStats{
		Participants: make([]models.ParticipantSummary, 0, len(participants)),
	}
	stats.ParticipantCount = len(participants)

	bank := BuildQuestionBank(quiz.Questions)

	totalScore := 0
	totalPercentage := 0.0
	missCounts := make(map[uuid.UUID]int)

	for i := range participants {
		p := &participants[i]
		totalScore += p.Score
		totalPercentage += Percentage(p.Score, p.TotalQuestions)

		for _, ans := range p.Answers {
			q, ok := bank[ans.QuestionID]
			if !ok {
				continue
			}
			if ans.SelectedOptionIndex != q.CorrectOptionIndex {
				missCounts[q.ID]++
			}
		}

		stats.Participants = append(stats.Participants, models.ParticipantSummary{
			ID:              p.ID,
			ParticipantName: p.ParticipantName,
			Score:           p.Score,
			TotalQuestions:  p.TotalQuestions,
			Percentage:      Percentage(p.Score, p.TotalQuestions),
			CompletedAt:     p.CompletedAt.Format(time.RFC3339),
		})
	}

	if stats.ParticipantCount > 0 {
		stats.AverageScore = round2(float64(totalScore) / float64(stats.ParticipantCount))
		stats.AveragePercentage = round2(totalPercentage / float64(stats.ParticipantCount))
	}

	stats.MostMissedQuestion = mostMissed(quiz.Questions, missCounts)

	// Xếp hạng theo điểm giảm dần, điểm bằng nhau giữ nguyên thứ tự đầu vào
	sort.SliceStable(stats.Participants, func(i, j int) bool {
		return stats.Participants[i].Score > stats.Participants[j].Score
	})

	return stats
}

// mostMissed chọn câu hỏi bị trả lời sai nhiều nhất. Duyệt theo thứ tự hiển
// thị của quiz và chỉ thay leader khi số lần sai lớn hơn hẳn: câu đứng trước
// thắng khi hoà, câu chưa ai sai không bao giờ được chọn, không có lượt sai
// nào thì trả về nil.
func mostMissed(questions []models.Question, missCounts map[uuid.UUID]int) *models.MissedQuestion {
	var top *models.MissedQuestion
	maxMisses := 0

	for _, q := range questions {
		if n := missCounts[q.ID]; n > maxMisses {
			maxMisses = n
			top = &models.MissedQuestion{
				ID:           q.ID,
				QuestionText: q.QuestionText,
				MissCount:    n,
			}
		}
	}
	return top
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
