package sqlc

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Items struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

type Bookings struct {
	ID        int64              `json:"id"`
	StartDate pgtype.Timestamptz `json:"start_date"`
	EndDate   pgtype.Timestamptz `json:"end_date"`
	ItemID    int64              `json:"item_id"`
	BookerID  int64              `json:"booker_id"`
	Status    string             `json:"status"`
}

type Comments struct {
	ID       int64              `json:"id"`
	Text     string             `json:"text"`
	ItemID   int64              `json:"item_id"`
	AuthorID int64              `json:"author_id"`
	Created  pgtype.Timestamptz `json:"created"`
}
