package models

import "time"

// Draft is a locally stored copy of a page being edited. Drafts survive a
// crashed or offline client and are dropped once the page is saved.
type Draft struct {
	// Key identifies the editing session: the page id for saved pages, a
	// client-generated id for pages never saved.
	Key     string
	OwnerID int64
	Page    LandingPage
	SavedAt time.Time
}
