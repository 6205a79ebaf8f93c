package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/vnkhanh/quiz-festif-backend/models"
	"github.com/vnkhanh/quiz-festif-backend/services"
)

func participantFor(quiz *models.Quiz, name string, selected ...int) models.Participant {
	p := models.Participant{
		ID:              uuid.New(),
		QuizID:          quiz.ID,
		ParticipantName: name,
		TotalQuestions:  len(quiz.Questions),
	}
	for i, sel := range selected {
		q := quiz.Questions[i]
		if sel == q.CorrectOptionIndex {
			p.Score++
		}
		p.Answers = append(p.Answers, models.SubmittedAnswer{
			QuestionID:          q.ID,
			SelectedOptionIndex: sel,
		})
	}
	return p
}

func TestAggregateStatsEmpty(t *testing.T) {
	quiz := newTestQuiz(0, 1)

	stats := services.AggregateStats(quiz, nil)
	if stats.ParticipantCount != 0 {
		t.Fatalf("expected 0 participants, got %d", stats.ParticipantCount)
	}
	if stats.AverageScore != 0 || stats.AveragePercentage != 0 {
		t.Fatalf("expected zero averages, got %+v", stats)
	}
	if stats.MostMissedQuestion != nil {
		t.Fatalf("expected no most-missed question, got %+v", stats.MostMissedQuestion)
	}
	if stats.Participants == nil || len(stats.Participants) != 0 {
		t.Fatalf("expected empty participants list, got %+v", stats.Participants)
	}
}

func TestAggregateStatsMostMissed(t *testing.T) {
	// Quiz 2 câu: 3 người sai Q1, 1 người sai Q2
	quiz := newTestQuiz(0, 0)

	participants := []models.Participant{
		participantFor(quiz, "An", 1, 0),
		participantFor(quiz, "Bình", 2, 0),
		participantFor(quiz, "Chi", 3, 0),
		participantFor(quiz, "Dũng", 0, 1),
	}

	stats := services.AggregateStats(quiz, participants)
	if stats.MostMissedQuestion == nil {
		t.Fatalf("expected a most-missed question")
	}
	if stats.MostMissedQuestion.ID != quiz.Questions[0].ID {
		t.Fatalf("expected Q1 as most missed, got %+v", stats.MostMissedQuestion)
	}
	if stats.MostMissedQuestion.MissCount != 3 {
		t.Fatalf("expected miss_count 3, got %d", stats.MostMissedQuestion.MissCount)
	}
}

func TestAggregateStatsPerfectScoresHaveNoMostMissed(t *testing.T) {
	quiz := newTestQuiz(1, 2)

	participants := []models.Participant{
		participantFor(quiz, "An", 1, 2),
		participantFor(quiz, "Bình", 1, 2),
	}

	stats := services.AggregateStats(quiz, participants)
	if stats.MostMissedQuestion != nil {
		t.Fatalf("expected nil most-missed when everyone is perfect, got %+v", stats.MostMissedQuestion)
	}
	if stats.AverageScore != 2 || stats.AveragePercentage != 100 {
		t.Fatalf("unexpected averages: %+v", stats)
	}
}

func TestAggregateStatsMostMissedTieBreak(t *testing.T) {
	// Q1 và Q2 cùng bị sai 1 lần: câu đứng trước trong quiz thắng
	quiz := newTestQuiz(0, 0)

	participants := []models.Participant{
		participantFor(quiz, "An", 0, 1),
		participantFor(quiz, "Bình", 1, 0),
	}

	stats := services.AggregateStats(quiz, participants)
	if stats.MostMissedQuestion == nil || stats.MostMissedQuestion.ID != quiz.Questions[0].ID {
		t.Fatalf("expected earliest question to win the tie, got %+v", stats.MostMissedQuestion)
	}
	if stats.MostMissedQuestion.MissCount != 1 {
		t.Fatalf("expected miss_count 1, got %d", stats.MostMissedQuestion.MissCount)
	}
}

func TestAggregateStatsAveragePercentageAcrossQuizSizes(t *testing.T) {
	// Hai người cùng đạt 50% nhưng total_questions khác nhau
	quiz := newTestQuiz(0, 0, 0, 0)

	half := participantFor(quiz, "An", 0, 0, 1, 1) // 2/4
	small := models.Participant{
		ID:              uuid.New(),
		QuizID:          quiz.ID,
		ParticipantName: "Bình",
		Score:           1,
		TotalQuestions:  2, // nộp khi quiz mới có 2 câu
		Answers: models.AnswerList{
			{QuestionID: quiz.Questions[0].ID, SelectedOptionIndex: 0},
			{QuestionID: quiz.Questions[1].ID, SelectedOptionIndex: 1},
		},
	}

	stats := services.AggregateStats(quiz, []models.Participant{half, small})
	if stats.AveragePercentage != 50.00 {
		t.Fatalf("expected average percentage 50.00, got %v", stats.AveragePercentage)
	}
	if stats.AverageScore != 1.5 {
		t.Fatalf("expected average score 1.5, got %v", stats.AverageScore)
	}
}

func TestAggregateStatsRanking(t *testing.T) {
	quiz := newTestQuiz(0, 0, 0)

	participants := []models.Participant{
		participantFor(quiz, "An", 1, 1, 1),   // 0 điểm
		participantFor(quiz, "Bình", 0, 0, 0), // 3 điểm
		participantFor(quiz, "Chi", 0, 0, 1),  // 2 điểm
		participantFor(quiz, "Dũng", 0, 1, 1), // 1 điểm, cùng hạng kiểm tra ổn định
		participantFor(quiz, "Em", 0, 1, 1),   // 1 điểm
	}

	stats := services.AggregateStats(quiz, participants)
	got := make([]string, 0, len(stats.Participants))
	for _, p := range stats.Participants {
		got = append(got, p.ParticipantName)
	}

	want := []string{"Bình", "Chi", "Dũng", "Em", "An"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ranking %v, got %v", want, got)
		}
	}
	if stats.Participants[0].Percentage != 100.00 {
		t.Fatalf("expected leader at 100.00, got %v", stats.Participants[0].Percentage)
	}
}

func TestAggregateStatsIgnoresAnswersForDeletedQuestions(t *testing.T) {
	quiz := newTestQuiz(0, 0)
	p := participantFor(quiz, "An", 1, 1) // sai cả 2 câu

	// Q2 bị xoá sau khi nộp: lượt sai của nó không được đếm nữa
	quiz.Questions = quiz.Questions[:1]

	stats := services.AggregateStats(quiz, []models.Participant{p})
	if stats.MostMissedQuestion == nil || stats.MostMissedQuestion.ID != quiz.Questions[0].ID {
		t.Fatalf("expected only the surviving question to be counted, got %+v", stats.MostMissedQuestion)
	}
	if stats.MostMissedQuestion.MissCount != 1 {
		t.Fatalf("expected miss_count 1, got %d", stats.MostMissedQuestion.MissCount)
	}
}
