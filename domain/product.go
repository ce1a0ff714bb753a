package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     description TEXT,
//     category    TEXT NOT NULL,
//     price       NUMERIC NOT NULL,
//     image_url   TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:text;not null" json:"category"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductPage is the paginated catalog listing shape.
type ProductPage struct {
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalItems int64     `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
	Data       []Product `json:"data"`
}
