// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Quiz is the read-only quiz descriptor served by the session authority.
// It is fetched once per client lifetime and never mutated locally.
type Quiz struct {
	// DurationSeconds is the total time budget of a session, in seconds.
	DurationSeconds int `json:"durationSeconds"`

	// Questions is the ordered list of questions shown to the user.
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question.
type Question struct {
	ID      QuestionID `json:"id"`
	Prompt  string     `json:"q"`
	Choices []string   `json:"choices"`
}

// UnmarshalJSON accepts the prompt either under "q" or under "prompt".
func (q *Question) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      QuestionID `json:"id"`
		Q       string     `json:"q"`
		Prompt  string     `json:"prompt"`
		Choices []string   `json:"choices"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	q.ID = raw.ID
	q.Prompt = raw.Q
	if q.Prompt == "" {
		q.Prompt = raw.Prompt
	}
	q.Choices = raw.Choices
	return nil
}

// QuestionID identifies a question within a quiz.
//
// Authorities are free to use numeric or string identifiers on the wire;
// both decode into the same string form.
type QuestionID string

// UnmarshalJSON decodes either a JSON string or a JSON number.
func (id *QuestionID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = QuestionID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("question id must be a string or a number: %w", err)
	}
	*id = QuestionID(n.String())
	return nil
}

// MarshalJSON encodes canonical integers ("3", "-12") as JSON numbers so that
// authorities using numeric ids receive the type they issued. Anything else,
// including "007" and "+5", stays a string.
func (id QuestionID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// String returns the identifier as a plain string.
func (id QuestionID) String() string {
	return string(id)
}

// Question returns the question with the given id.
func (q Quiz) Question(id QuestionID) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}
