package postgres

import (
	"time"

	"fintrack-api/internal/model"

	"github.com/uptrace/bun"
)

// categoryRow is the bun model for the categories table.
type categoryRow struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID        string    `bun:"id,pk,type:uuid"`
	UserID    string    `bun:"user_id,notnull,type:uuid"`
	Name      string    `bun:"name,notnull"`
	Icon      string    `bun:"icon,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp"`
}

func (r *categoryRow) toModel() model.Category {
	return model.Category{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Icon:      r.Icon,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func newCategoryRow(cat model.Category) *categoryRow {
	return &categoryRow{
		ID:        cat.ID,
		UserID:    cat.UserID,
		Name:      cat.Name,
		Icon:      cat.Icon,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}
