package entity

import "time"

// Game - persisted form of a session's game: the full history and the step pointer.
type Game struct {
	ID        string    `json:"id"`
	History   []Board   `json:"history"`
	Step      int       `json:"step"`
	UpdatedAt time.Time `json:"updated_at"`
}
