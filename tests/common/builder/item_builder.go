//go:build unit || e2e

package builder

import (
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"
)

type ItemBuilder struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          10,
		OwnerID:     1,
		Name:        "Cordless drill",
		Description: "18V, two batteries",
		Available:   true,
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

func (i *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	return &shared.ItemSnapshot{
		ID:        i.ID,
		OwnerID:   i.OwnerID,
		Name:      i.Name,
		Available: i.Available,
	}
}

// BuildView returns the bare item without projection or comments.
func (i *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
	}
}

func (i *ItemBuilder) WithID(id int64) *ItemBuilder {
	i.ID = id
	return i
}

func (i *ItemBuilder) WithOwnerID(ownerID int64) *ItemBuilder {
	i.OwnerID = ownerID
	return i
}

func (i *ItemBuilder) AsUnavailable() *ItemBuilder {
	i.Available = false
	return i
}
