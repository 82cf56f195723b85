package domain

import "time"

type Note struct {
	ID             int32     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	TenantID       int32     `json:"tenant_id"`
	CreatedBy      int32     `json:"created_by"`
	CreatedByEmail string    `json:"created_by_email,omitempty"` // Populated in list/get queries
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NoteActivity is one day of note creation volume for tenant analytics.
type NoteActivity struct {
	Date         string `json:"date"`
	NotesCreated int32  `json:"notes_created"`
}
