// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quiz-timer/internal/service"
	"github.com/MKhiriev/go-quiz-timer/models"
)

// quizModel renders one session of a [service.SessionClient] and turns key
// presses into client calls. It quits with reset set when the user asks for
// a new quiz.
type quizModel struct {
	ctx    context.Context
	done   <-chan struct{}
	client service.SessionClient

	buildInfo models.AppBuildInfo
	copyText  func(string) error

	snapshot models.Snapshot
	spinner  spinner.Model

	// cursor is the question under focus, choice the highlighted option.
	cursor int
	choice int

	syncing   bool
	finishing bool
	status    string

	overlay       *errorOverlayModel
	showBuildInfo bool

	reset bool
}

func newQuizModel(ctx context.Context, done <-chan struct{}, client service.SessionClient, buildInfo models.AppBuildInfo) quizModel {
	return quizModel{
		ctx:       ctx,
		done:      done,
		client:    client,
		buildInfo: buildInfo,
		copyText:  clipboard.WriteAll,
		snapshot:  client.Snapshot(),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m quizModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		cmdStart(m.ctx, m.client),
		waitForEvent(m.client.Events(), m.done),
	)
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.snapshot.Status != models.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionReadyMsg:
		m.snapshot = m.client.Snapshot()
		m.alignChoice()
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
		}
		return m, nil

	case sessionEventMsg:
		if msg.event.Snapshot.Generation < m.snapshot.Generation {
			return m, waitForEvent(m.client.Events(), m.done)
		}
		m.snapshot = msg.event.Snapshot
		if msg.event.Kind == models.EventError && msg.event.Err != nil {
			m.overlay = newErrorOverlay(msg.event.Err)
		}
		if msg.event.Kind == models.EventStarted {
			m.alignChoice()
		}
		return m, waitForEvent(m.client.Events(), m.done)

	case syncDoneMsg:
		m.syncing = false
		m.snapshot = m.client.Snapshot()
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		return m.withStatus("Synced with the server")

	case finishDoneMsg:
		m.finishing = false
		m.snapshot = m.client.Snapshot()
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m quizModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.dismiss) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if msg.String() == "esc" || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.reset):
		m.reset = true
		return m, tea.Quit
	}

	switch m.snapshot.Status {
	case models.StatusRunning:
		return m.updateRunning(msg)
	case models.StatusFinished:
		return m.updateFinished(msg)
	}
	return m, nil
}

func (m quizModel) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	questions := m.questions()
	if len(questions) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
			m.alignChoice()
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(questions)-1 {
			m.cursor++
			m.alignChoice()
		}
	case key.Matches(msg, keys.left):
		if m.choice > 0 {
			m.choice--
		}
	case key.Matches(msg, keys.right):
		if m.choice < len(questions[m.cursor].Choices)-1 {
			m.choice++
		}
	case key.Matches(msg, keys.digit):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n > len(questions[m.cursor].Choices) {
			return m, nil
		}
		m.choice = n - 1
		m.selectCurrent()
	case key.Matches(msg, keys.pick):
		m.selectCurrent()
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, cmdSync(m.ctx, m.client)
	case key.Matches(msg, keys.finish):
		return m.startFinish()
	}
	return m, nil
}

func (m quizModel) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		if m.snapshot.Result == nil {
			return m.withStatus("Nothing to copy yet")
		}
		if err := m.copyText(resultJSON(*m.snapshot.Result)); err != nil {
			m.overlay = newErrorOverlay(err)
			return m, nil
		}
		return m.withStatus("Result copied to clipboard")
	case key.Matches(msg, keys.finish):
		// a failed result fetch can be retried
		if m.snapshot.Result == nil {
			return m.startFinish()
		}
	}
	return m, nil
}

func (m quizModel) startFinish() (tea.Model, tea.Cmd) {
	if m.finishing {
		return m, nil
	}
	m.finishing = true
	return m, cmdFinish(m.ctx, m.client)
}

func (m *quizModel) selectCurrent() {
	question := m.questions()[m.cursor]
	if m.client.SelectAnswer(m.ctx, question.ID, m.choice) {
		m.snapshot = m.client.Snapshot()
	}
}

// alignChoice moves the highlight to the stored answer of the focused
// question.
func (m *quizModel) alignChoice() {
	questions := m.questions()
	if m.cursor >= len(questions) {
		m.cursor = max(len(questions)-1, 0)
	}
	m.choice = 0
	if len(questions) == 0 {
		return
	}
	if selected, ok := m.snapshot.Answers[questions[m.cursor].ID]; ok {
		m.choice = selected
	}
}

func (m quizModel) withStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	return m, cmdClearStatus()
}

func (m quizModel) questions() []models.Question {
	if m.snapshot.Quiz == nil {
		return nil
	}
	return m.snapshot.Quiz.Questions
}
