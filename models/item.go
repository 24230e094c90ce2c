package models

// Item is an inventory record as returned to clients.
type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ItemName   string `json:"item_name"`
	Quantity   int    `json:"quantity"`
	ExpiryDate Date   `json:"expiry_date"`
	InsertDate Date   `json:"insert_date"`
}

// ItemCreate is the body of POST /items. insert_date is stamped by the server.
type ItemCreate struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	ItemName   string `json:"item_name" validate:"required"`
	Quantity   *int   `json:"quantity" validate:"required"`
	ExpiryDate *Date  `json:"expiry_date" validate:"required"`
}

// ItemUpdate is a partial update; nil fields are left untouched.
type ItemUpdate struct {
	ItemName   *string `json:"item_name,omitempty"`
	Quantity   *int    `json:"quantity,omitempty"`
	ExpiryDate *Date   `json:"expiry_date,omitempty"`
}

func (u ItemUpdate) IsEmpty() bool {
	return u.ItemName == nil && u.Quantity == nil && u.ExpiryDate == nil
}

// ItemFilter selects items. Date and quantity bounds are inclusive lower bounds.
type ItemFilter struct {
	Email      *string `json:"email,omitempty"`
	ExpiryDate *Date   `json:"expiry_date,omitempty"`
	InsertDate *Date   `json:"insert_date,omitempty"`
	Quantity   *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}
