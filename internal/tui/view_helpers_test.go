package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-quiz-timer/models"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{seconds: 600, want: "10:00"},
		{seconds: 599, want: "9:59"},
		{seconds: 61, want: "1:01"},
		{seconds: 9, want: "0:09"},
		{seconds: 0, want: "0:00"},
		{seconds: -5, want: "0:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatClock(tt.seconds))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "привет", fitText("привет", 6))
	assert.Equal(t, "anything", fitText("anything", 0))
}

func TestResultJSON(t *testing.T) {
	got := resultJSON(models.Result{Score: 1, Total: 2, Answers: models.AnswerMap{"1": 1}})
	assert.JSONEq(t, `{"score":1,"total":2,"answers":{"1":1}}`, got)
}
