package model

// CartLine is a cart entry. Name, price and image are captured at add time;
// later product edits do not change existing lines.
type CartLine struct {
	ProductID uint64  `json:"product_id"`
	Name      string  `json:"name"`
	NameRu    string  `json:"name_ru"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// AddToCartRequest carries the product snapshot the webview holds when the
// user taps buy.
type AddToCartRequest struct {
	ProductID uint64  `json:"product_id" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	NameRu    string  `json:"name_ru"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

type CartResponse struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}
