package domain

import "time"

// Prompt is a curated question profiles can answer.
type Prompt struct {
	ID        int       `json:"id" db:"id"`
	Text      string    `json:"text" db:"text"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PromptResponse is a profile's answer to a prompt. One per (profile, prompt).
type PromptResponse struct {
	ID         int       `json:"id" db:"id"`
	ProfileID  int       `json:"profile_id" db:"profile_id"`
	PromptID   int       `json:"prompt_id" db:"prompt_id"`
	PromptText string    `json:"prompt_text" db:"prompt_text"`
	Response   string    `json:"response" db:"response"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
