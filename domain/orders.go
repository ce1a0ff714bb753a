package domain

import "time"

// CREATE TABLE public.orders (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id    BIGINT NOT NULL REFERENCES users(id),
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );
//
// CREATE TABLE public.order_items (
//     order_id   BIGINT NOT NULL REFERENCES orders(id),
//     product_id BIGINT NOT NULL REFERENCES products(id),
//     quantity   INT NOT NULL,
//     price      NUMERIC NOT NULL
// );

type Order struct {
	ID        uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64      `gorm:"column:user_id;not null" json:"user_id"`
	CreatedAt time.Time   `gorm:"column:created_at" json:"created_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem carries the price recorded at transaction time. It is copied
// from products.price on insert and never follows later catalog changes.
type OrderItem struct {
	OrderID   uint64  `gorm:"column:order_id" json:"-"`
	ProductID uint64  `gorm:"column:product_id" json:"product_id"`
	Quantity  int     `gorm:"column:quantity" json:"quantity"`
	Price     float64 `gorm:"column:price;type:numeric" json:"price"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
