package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

// registerRequest carries no role field on purpose: public registration
// always creates a "user" account. Admin accounts are provisioned
// out-of-band.
type registerRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname"  validate:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- Catalog ---

// goodsRequest is shared by create and update; update replaces all writable
// fields, so the same validation applies.
type goodsRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Description string  `json:"description"`
	Category    string  `json:"category"    validate:"required"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
	Image       string  `json:"image"`
}

type goodsResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listGoodsResponse struct {
	Goods []goodsResponse `json:"goods"`
}

// --- Cart ---

type addToCartRequest struct {
	GoodsID  string `json:"goods_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type updateCartRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// cartLineResponse carries the stored line plus the resolved goods. Goods is
// null and unresolved is true when the catalog item no longer exists.
type cartLineResponse struct {
	GoodsID    string         `json:"goods_id"`
	Quantity   int            `json:"quantity"`
	CreatedAt  time.Time      `json:"created_at"`
	Goods      *goodsResponse `json:"goods"`
	Unresolved bool           `json:"unresolved,omitempty"`
}

type cartResponse struct {
	Cart []cartLineResponse `json:"cart"`
}

// --- Favorites ---

type addFavoriteRequest struct {
	GoodsID string `json:"goods_id" validate:"required"`
}

type favoriteResponse struct {
	GoodsID    string         `json:"goods_id"`
	CreatedAt  time.Time      `json:"created_at"`
	Goods      *goodsResponse `json:"goods"`
	Unresolved bool           `json:"unresolved,omitempty"`
}

type favoritesResponse struct {
	Favorites []favoriteResponse `json:"favorites"`
}

// --- Checkout ---

type checkoutResponse struct {
	Total float64 `json:"total"`
	Lines int     `json:"lines"`
}
