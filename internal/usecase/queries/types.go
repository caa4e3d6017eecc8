package queries

import "time"

// BookingView is a booking joined with the item facts it is rendered with.
type BookingView struct {
	ID          int64
	Start       time.Time
	End         time.Time
	Status      string
	BookerID    int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
}

type BookingSummary struct {
	ID       int64
	BookerID int64
}

type ItemView struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
	// Set only for the owner.
	LastBooking *BookingSummary
	NextBooking *BookingSummary
	Comments    []*CommentView
}

type CommentView struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorName string
	Created    time.Time
}

type UserView struct {
	ID    int64
	Name  string
	Email string
}
