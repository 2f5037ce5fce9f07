package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quiz-timer/models"
)

const (
	lowTimeThreshold = 30
	promptWidth      = 70
)

func (m quizModel) View() string {
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.snapshot.Status {
	case models.StatusRunning:
		return renderPage("QUIZ", m.header()+"\n\n"+m.questionList(), m.footer("↑/↓ question  ←/→ choice  enter/1-9 answer  s: sync  f: submit  r: restart"))
	case models.StatusFinished:
		return renderPage("QUIZ", m.header()+"\n\n"+m.resultView(), m.footer("c: copy result  r: start new quiz"))
	default:
		return renderPage("QUIZ", m.spinner.View()+" Loading quiz...", m.footer("r: retry"))
	}
}

func (m quizModel) header() string {
	duration := 0
	if m.snapshot.Quiz != nil {
		duration = m.snapshot.Quiz.DurationSeconds
	}

	remaining := formatClock(m.snapshot.Remaining)
	if m.snapshot.Status == models.StatusRunning && m.snapshot.Remaining <= lowTimeThreshold {
		remaining = lowTimeStyle.Render(remaining)
	}

	line := fmt.Sprintf("Duration: %s   Remaining: %s   Status: %s",
		formatClock(duration), remaining, m.snapshot.Status)
	if m.syncing {
		line += "   (syncing...)"
	}
	return line
}

func (m quizModel) questionList() string {
	var b strings.Builder

	for i, q := range m.questions() {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		fmt.Fprintf(&b, "%s%d. %s\n", marker, i+1, fitText(q.Prompt, promptWidth))

		selected, answered := m.snapshot.Answers[q.ID]
		b.WriteString("     ")
		for j, choice := range q.Choices {
			radio := "( )"
			if answered && selected == j {
				radio = "(•)"
			}
			label := fmt.Sprintf("%s %d:%s", radio, j+1, choice)
			if i == m.cursor && j == m.choice {
				label = cursorStyle.Render("[" + label + "]")
			} else {
				label = " " + label + " "
			}
			b.WriteString(label)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nAnswered %d of %d", len(m.snapshot.Answers), len(m.questions()))
	return b.String()
}

func (m quizModel) resultView() string {
	if m.snapshot.Result == nil {
		if m.finishing {
			return m.spinner.View() + " Submitting..."
		}
		return "Waiting for the result... press f to retry"
	}

	result := m.snapshot.Result
	return fmt.Sprintf("Score: %d / %d\n\n%s", result.Score, result.Total, resultJSON(*result))
}

func (m quizModel) footer(hotKeys string) string {
	if m.status == "" {
		return hotKeys + "  v: about"
	}
	return m.status + "\n" + hotKeys + "  v: about"
}
