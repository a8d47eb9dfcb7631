package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the enumerated account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// CartLine is a (goods reference, quantity) pair embedded in a User. The
// reference is weak: the goods may have been deleted from the catalog since
// the line was created, and every read path must handle that.
type CartLine struct {
	GoodsID   string    `json:"goods_id" bson:"goods_id"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Favorite marks a goods as favorited by a User. Same weak-reference rules
// as CartLine.
type Favorite struct {
	GoodsID   string    `json:"goods_id" bson:"goods_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// User is the identity aggregate. Cart lines and favorites are embedded and
// live and die with the user document.
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password_hash"`
	FirstName    string     `json:"firstname" bson:"firstname"`
	LastName     string     `json:"lastname" bson:"lastname"`
	Address      string     `json:"address,omitempty" bson:"address,omitempty"`
	Phone        string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         string     `json:"role" bson:"role"`
	Cart         []CartLine `json:"cart" bson:"cart"`
	Favorites    []Favorite `json:"favorites" bson:"favorites"`
	CreatedAt    time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" bson:"updated_at"`
}

// CartLineIndex returns the position of the cart line referencing goodsID,
// or -1 when the cart has no such line. At most one line per goods id exists
// (merge invariant), so the first match is the only match.
func (u *User) CartLineIndex(goodsID string) int {
	for i, line := range u.Cart {
		if line.GoodsID == goodsID {
			return i
		}
	}
	return -1
}

// FavoriteIndex returns the position of the favorite referencing goodsID,
// or -1 when none exists.
func (u *User) FavoriteIndex(goodsID string) int {
	for i, fav := range u.Favorites {
		if fav.GoodsID == goodsID {
			return i
		}
	}
	return -1
}
