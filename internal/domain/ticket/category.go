package ticket

import (
	"fmt"
	"time"
)

// Category groups tickets for the public queue and the dashboard
// leaderboard. The slug is unique and derived from the name by the
// store layer.
type Category struct {
	id        uint
	name      string
	slug      string
	createdAt time.Time
}

func NewCategory(name string) (*Category, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 120 {
		return nil, fmt.Errorf("name exceeds maximum length of 120 characters")
	}

	return &Category{
		name:      name,
		createdAt: time.Now(),
	}, nil
}

func ReconstructCategory(id uint, name, slug string, createdAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(slug) == 0 {
		return nil, fmt.Errorf("slug is required")
	}

	return &Category{
		id:        id,
		name:      name,
		slug:      slug,
		createdAt: createdAt,
	}, nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Slug() string {
	return c.slug
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

// SetSlug assigns the unique slug chosen by the store layer.
func (c *Category) SetSlug(slug string) error {
	if len(slug) == 0 {
		return fmt.Errorf("slug cannot be empty")
	}
	c.slug = slug
	return nil
}
