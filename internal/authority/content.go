package authority

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-quiz-timer/models"
)

// QuizContent is the private quiz definition, including correct answers.
type QuizContent struct {
	DurationSeconds int               `yaml:"duration_seconds"`
	Questions       []QuestionContent `yaml:"questions"`
}

type QuestionContent struct {
	ID      string   `yaml:"id"`
	Prompt  string   `yaml:"prompt"`
	Choices []string `yaml:"choices"`
	Answer  int      `yaml:"answer"`
}

// DefaultQuizContent is served when no quiz file is configured.
func DefaultQuizContent() QuizContent {
	return QuizContent{
		DurationSeconds: 600,
		Questions: []QuestionContent{
			{ID: "1", Prompt: "What is 2 + 2?", Choices: []string{"3", "4", "5"}, Answer: 1},
			{ID: "2", Prompt: "Capital of France?", Choices: []string{"Berlin", "Madrid", "Paris"}, Answer: 2},
			{ID: "3", Prompt: "Which planet is known as the Red Planet?", Choices: []string{"Mars", "Venus", "Jupiter"}, Answer: 0},
			{ID: "4", Prompt: "How many seconds are in a minute?", Choices: []string{"30", "60", "100"}, Answer: 1},
		},
	}
}

// LoadQuizContent reads a YAML quiz file. An empty path selects
// [DefaultQuizContent].
func LoadQuizContent(path string) (QuizContent, error) {
	if path == "" {
		return DefaultQuizContent(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return QuizContent{}, fmt.Errorf("read quiz file: %w", err)
	}

	var content QuizContent
	if err = yaml.Unmarshal(data, &content); err != nil {
		return QuizContent{}, fmt.Errorf("%w: %w", ErrInvalidQuizContent, err)
	}

	if err = content.Validate(); err != nil {
		return QuizContent{}, err
	}
	return content, nil
}

// Validate checks that the content can be served and scored.
func (c QuizContent) Validate() error {
	if c.DurationSeconds <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidQuizContent)
	}
	if len(c.Questions) == 0 {
		return fmt.Errorf("%w: no questions", ErrInvalidQuizContent)
	}

	seen := make(map[string]struct{}, len(c.Questions))
	for i, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("%w: question %d has no id", ErrInvalidQuizContent, i)
		}
		if _, ok := seen[q.ID]; ok {
			return fmt.Errorf("%w: duplicate question id %q", ErrInvalidQuizContent, q.ID)
		}
		seen[q.ID] = struct{}{}

		if len(q.Choices) < 2 {
			return fmt.Errorf("%w: question %q needs at least two choices", ErrInvalidQuizContent, q.ID)
		}
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			return fmt.Errorf("%w: question %q answer index out of range", ErrInvalidQuizContent, q.ID)
		}
	}
	return nil
}

// Public strips the correct answers.
func (c QuizContent) Public() models.Quiz {
	quiz := models.Quiz{
		DurationSeconds: c.DurationSeconds,
		Questions:       make([]models.Question, 0, len(c.Questions)),
	}
	for _, q := range c.Questions {
		quiz.Questions = append(quiz.Questions, models.Question{
			ID:      models.QuestionID(q.ID),
			Prompt:  q.Prompt,
			Choices: append([]string(nil), q.Choices...),
		})
	}
	return quiz
}

func (c QuizContent) question(id models.QuestionID) (QuestionContent, bool) {
	for _, q := range c.Questions {
		if q.ID == string(id) {
			return q, true
		}
	}
	return QuestionContent{}, false
}

// score counts the answers matching the correct choice.
func (c QuizContent) score(answers models.AnswerMap) int {
	score := 0
	for _, q := range c.Questions {
		if choice, ok := answers[models.QuestionID(q.ID)]; ok && choice == q.Answer {
			score++
		}
	}
	return score
}
