package entity

import "time"

// Event is a scheduled happening shown on the events page.
type Event struct {
	ID          int64     // Sequential identifier.
	Title       string    // Display title of the event.
	Artist      string    // Who is performing or hosting.
	Description string    // Free-form description.
	StartDate   string    // Start date as entered in the form (YYYY-MM-DD).
	CreatedAt   time.Time // Timestamp of when the event was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
