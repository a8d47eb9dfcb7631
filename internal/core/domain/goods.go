package domain

import "time"

// Goods is a catalog item. Quantity is the available stock and is the sole
// basis for cart availability checks; cart operations never decrement it.
type Goods struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Category    string    `json:"category" bson:"category"`
	Quantity    int       `json:"quantity" bson:"quantity"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// HasStock reports whether the requested quantity can be satisfied by the
// current stock level.
func (g *Goods) HasStock(quantity int) bool {
	return quantity <= g.Quantity
}
