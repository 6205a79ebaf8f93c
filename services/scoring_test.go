package services_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/vnkhanh/quiz-festif-backend/models"
	"github.com/vnkhanh/quiz-festif-backend/services"
)

func newTestQuiz(correctIndexes ...int) *models.Quiz {
	quiz := &models.Quiz{ID: uuid.New()}
	for i, correct := range correctIndexes {
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:                 uuid.New(),
			QuizID:             quiz.ID,
			QuestionText:       "Câu hỏi số mấy đây?",
			Options:            models.StringList{"A", "B", "C", "D"},
			CorrectOptionIndex: correct,
			OrderIndex:         i,
		})
	}
	return quiz
}

func TestScoreSubmissionPerfect(t *testing.T) {
	quiz := newTestQuiz(0, 1, 2, 3)

	var answers []models.SubmittedAnswer
	for _, q := range quiz.Questions {
		answers = append(answers, models.SubmittedAnswer{
			QuestionID:          q.ID,
			SelectedOptionIndex: q.CorrectOptionIndex,
		})
	}

	score, results, kept := services.ScoreSubmission(quiz, answers)
	if score != 4 {
		t.Fatalf("expected score 4, got %d", score)
	}
	if len(results) != 4 || len(kept) != 4 {
		t.Fatalf("expected 4 results and 4 kept answers, got %d/%d", len(results), len(kept))
	}
	for i, r := range results {
		if !r.IsCorrect {
			t.Fatalf("expected result %d correct, got %+v", i, r)
		}
	}
	if pct := services.Percentage(score, len(quiz.Questions)); pct != 100.00 {
		t.Fatalf("expected 100.00%%, got %.2f", pct)
	}
}

func TestScoreSubmissionMixedScenario(t *testing.T) {
	// Q1 đáp án 2, Q2 đáp án 0; nộp (Q1,2) đúng và (Q2,1) sai
	quiz := newTestQuiz(2, 0)
	answers := []models.SubmittedAnswer{
		{QuestionID: quiz.Questions[0].ID, SelectedOptionIndex: 2},
		{QuestionID: quiz.Questions[1].ID, SelectedOptionIndex: 1},
	}

	score, results, _ := services.ScoreSubmission(quiz, answers)
	if score != 1 {
		t.Fatalf("expected score 1, got %d", score)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !results[0].IsCorrect || results[0].QuestionID != quiz.Questions[0].ID {
		t.Fatalf("expected first result correct for Q1, got %+v", results[0])
	}
	if results[1].IsCorrect {
		t.Fatalf("expected second result incorrect, got %+v", results[1])
	}
	if pct := services.Percentage(score, len(quiz.Questions)); pct != 50.00 {
		t.Fatalf("expected 50.00%%, got %.2f", pct)
	}
}

func TestScoreSubmissionDropsStaleQuestions(t *testing.T) {
	quiz := newTestQuiz(0, 1)
	answers := []models.SubmittedAnswer{
		{QuestionID: quiz.Questions[0].ID, SelectedOptionIndex: 0},
		{QuestionID: uuid.New(), SelectedOptionIndex: 1}, // không thuộc quiz
		{QuestionID: quiz.Questions[1].ID, SelectedOptionIndex: 1},
	}

	score, results, kept := services.ScoreSubmission(quiz, answers)
	if score != 2 {
		t.Fatalf("expected stale answer to be ignored, score %d", score)
	}
	if len(results) != 2 || len(kept) != 2 {
		t.Fatalf("expected stale answer excluded from results and kept list, got %d/%d", len(results), len(kept))
	}
}

func TestScoreSubmissionAllStale(t *testing.T) {
	quiz := newTestQuiz(0, 1, 2)
	answers := []models.SubmittedAnswer{
		{QuestionID: uuid.New(), SelectedOptionIndex: 0},
		{QuestionID: uuid.New(), SelectedOptionIndex: 2},
	}

	score, results, _ := services.ScoreSubmission(quiz, answers)
	if score != 0 {
		t.Fatalf("expected score 0, got %d", score)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
	// total_questions vẫn là số câu của quiz, không phải số câu chấm được
	if pct := services.Percentage(score, len(quiz.Questions)); pct != 0 {
		t.Fatalf("expected 0%%, got %.2f", pct)
	}
}

func TestGradeAnswerOutOfRangeIsJustIncorrect(t *testing.T) {
	quiz := newTestQuiz(3)
	q := quiz.Questions[0]

	for _, selected := range []int{-1, 4, 99} {
		r := services.GradeAnswer(q, models.SubmittedAnswer{QuestionID: q.ID, SelectedOptionIndex: selected})
		if r.IsCorrect {
			t.Fatalf("expected index %d to be incorrect", selected)
		}
		if r.SelectedOptionIndex != selected || r.CorrectOptionIndex != 3 {
			t.Fatalf("unexpected result for index %d: %+v", selected, r)
		}
	}
}

func TestRegradeParticipationIdempotent(t *testing.T) {
	quiz := newTestQuiz(1, 2)
	p := &models.Participant{
		ID:             uuid.New(),
		QuizID:         quiz.ID,
		Score:          1,
		TotalQuestions: 2,
		Answers: models.AnswerList{
			{QuestionID: quiz.Questions[0].ID, SelectedOptionIndex: 1},
			{QuestionID: quiz.Questions[1].ID, SelectedOptionIndex: 0},
		},
	}

	first := services.RegradeParticipation(quiz, p)
	second := services.RegradeParticipation(quiz, p)

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected 2 results on both passes, got %d/%d", len(first), len(second))
	}
	for i := range first {
		if !reflect.DeepEqual(first[i], second[i]) {
			t.Fatalf("regrade not idempotent at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
	if !first[0].IsCorrect || first[1].IsCorrect {
		t.Fatalf("unexpected correctness: %+v", first)
	}
}

func TestRegradeParticipationAfterQuestionDeleted(t *testing.T) {
	quiz := newTestQuiz(0, 1)
	p := &models.Participant{
		Score:          2,
		TotalQuestions: 2,
		Answers: models.AnswerList{
			{QuestionID: quiz.Questions[0].ID, SelectedOptionIndex: 0},
			{QuestionID: quiz.Questions[1].ID, SelectedOptionIndex: 1},
		},
	}

	// Xoá Q2 khỏi quiz rồi chấm lại: câu trả lời cho Q2 biến mất khỏi kết
	// quả, nhưng score/total đã chốt thì giữ nguyên
	quiz.Questions = quiz.Questions[:1]

	results := services.RegradeParticipation(quiz, p)
	if len(results) != 1 {
		t.Fatalf("expected 1 result after deletion, got %d", len(results))
	}
	if results[0].QuestionID != quiz.Questions[0].ID {
		t.Fatalf("unexpected surviving result: %+v", results[0])
	}
	if p.Score != 2 || p.TotalQuestions != 2 {
		t.Fatalf("stored fields must stay frozen, got %d/%d", p.Score, p.TotalQuestions)
	}
}

func TestPercentageRounding(t *testing.T) {
	if pct := services.Percentage(1, 3); pct != 33.33 {
		t.Fatalf("expected 33.33, got %v", pct)
	}
	if pct := services.Percentage(2, 3); pct != 66.67 {
		t.Fatalf("expected 66.67, got %v", pct)
	}
	if pct := services.Percentage(0, 0); pct != 0 {
		t.Fatalf("expected 0 when quiz has no questions, got %v", pct)
	}
}
