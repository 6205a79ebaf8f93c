package services

import (
	"math"

	"github.com/google/uuid"
	"github.com/vnkhanh/quiz-festif-backend/models"
)

// BuildQuestionBank tạo index id -> câu hỏi để tra cứu O(1) khi chấm bài.
// Luôn dựng lại từ bộ câu hỏi vừa load, không cache giữa các request: sửa
// quiz xong thì lần chấm/xem kế tiếp thấy ngay bộ câu hỏi mới.
func BuildQuestionBank(questions []models.Question) map[uuid.UUID]models.Question {
	bank := make(map[uuid.UUID]models.Question, len(questions))
	for _, q := range questions {
		bank[q.ID] = q
	}
	return bank
}

// GradeAnswer chấm một câu trả lời. Đúng khi index được chọn trùng khớp
// chính xác với index đáp án; index âm hoặc vượt quá 3 chỉ đơn giản là sai.
func GradeAnswer(q models.Question, ans models.SubmittedAnswer) models.AnswerResult {
	return models.AnswerResult{
		QuestionID:          q.ID,
		QuestionText:        q.QuestionText,
		SelectedOptionIndex: ans.SelectedOptionIndex,
		CorrectOptionIndex:  q.CorrectOptionIndex,
		IsCorrect:           ans.SelectedOptionIndex == q.CorrectOptionIndex,
		Options:             q.Options,
	}
}

// ScoreSubmission chấm toàn bộ bài nộp theo đúng thứ tự gửi lên.
//
// Câu trả lời trỏ tới question_id không còn trong quiz bị bỏ qua hoàn toàn:
// không tính điểm, không xuất hiện trong kết quả, không được lưu lại. Đây là
// chính sách khoan dung có chủ đích, không phải lỗi.
//
// Trả về: điểm (số câu đúng), kết quả từng câu, và danh sách câu trả lời
// tối giản để lưu vào Participant. total_questions luôn là số câu hỏi hiện
// có của quiz, kể cả khi người chơi bỏ sót câu.
func ScoreSubmission(quiz *models.Quiz, answers []models.SubmittedAnswer) (int, []models.AnswerResult, models.AnswerList) {
	bank := BuildQuestionBank(quiz.Questions)

	score := 0
	results := make([]models.AnswerResult, 0, len(answers))
	kept := make(models.AnswerList, 0, len(answers))

	for _, ans := range answers {
		q, ok := bank[ans.QuestionID]
		if !ok {
			continue
		}

		r := GradeAnswer(q, ans)
		if r.IsCorrect {
			score++
		}
		results = append(results, r)
		kept = append(kept, models.SubmittedAnswer{
			QuestionID:          q.ID,
			SelectedOptionIndex: ans.SelectedOptionIndex,
		})
	}

	return score, results, kept
}

// RegradeParticipation chấm lại câu trả lời đã lưu của một lượt tham gia,
// dựa trên bộ câu hỏi *hiện tại* của quiz. Score và TotalQuestions đã chốt
// lúc nộp bài nên không tính lại ở đây; nếu quiz bị sửa sau khi có người
// chơi, phần hiển thị đúng/sai có thể lệch với điểm đã lưu. Đây là hành vi
// được giữ nguyên từ trước, xem DESIGN.md.
func RegradeParticipation(quiz *models.Quiz, p *models.Participant) []models.AnswerResult {
	bank := BuildQuestionBank(quiz.Questions)

	results := make([]models.AnswerResult, 0, len(p.Answers))
	for _, ans := range p.Answers {
		q, ok := bank[ans.QuestionID]
		if !ok {
			// Câu hỏi đã bị xoá -> ẩn khỏi kết quả
			continue
		}
		results = append(results, GradeAnswer(q, ans))
	}
	return results
}

// Percentage tính phần trăm điểm, làm tròn 2 chữ số thập phân để hiển thị.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := float64(score) / float64(total) * 100
	return math.Round(pct*100) / 100
}
