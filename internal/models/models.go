package models

import "time"

type Product struct {
	Id    int    `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	Price int    `json:"price" mapstructure:"price"`
	Image string `json:"image" mapstructure:"image"`
}

// CartLine is one materialized cart entry: the resolved product, the
// session quantity and the resulting subtotal in minor currency units.
type CartLine struct {
	Product  Product
	Qty      int
	Subtotal int
}

type Comment struct {
	Id        int       `json:"id" db:"id"`
	ProductId int       `json:"product_id" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Rating    int       `json:"rating" db:"rating"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Order struct {
	Id        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Address   string    `json:"address" db:"address"`
	Total     int       `json:"total" db:"total"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type OrderItem struct {
	Id        int `json:"id" db:"id"`
	OrderId   int `json:"order_id" db:"order_id"`
	ProductId int `json:"product_id" db:"product_id"`
	Qty       int `json:"qty" db:"qty"`
	Price     int `json:"price" db:"price"`
}
