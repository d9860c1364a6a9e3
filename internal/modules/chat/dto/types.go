package dto

import "time"

type QueryInput struct {
	Text      string
	Mode      string
	ContextID string
}

type MessageOutput struct {
	ID        string
	Role      string
	Content   string
	Thoughts  []string
	Sources   []string
	Mode      string
	Timestamp time.Time
}
