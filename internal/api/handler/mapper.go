package handler

import (
	"github.com/babies-shop/commerce-api/internal/core/domain"
	"github.com/babies-shop/commerce-api/internal/core/ports"
)

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		Phone:     u.Phone,
		Role:      u.Role,
	}
}

func toGoodsResponse(g *domain.Goods) goodsResponse {
	return goodsResponse{
		ID:          g.ID,
		Name:        g.Name,
		Price:       g.Price,
		Description: g.Description,
		Category:    g.Category,
		Quantity:    g.Quantity,
		Image:       g.Image,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func toCartResponse(lines []ports.CartLineView) cartResponse {
	out := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		item := cartLineResponse{
			GoodsID:    line.GoodsID,
			Quantity:   line.Quantity,
			CreatedAt:  line.CreatedAt,
			Unresolved: line.Unresolved,
		}
		if line.Goods != nil {
			g := toGoodsResponse(line.Goods)
			item.Goods = &g
		}
		out = append(out, item)
	}
	return cartResponse{Cart: out}
}

func toFavoritesResponse(favs []ports.FavoriteView) favoritesResponse {
	out := make([]favoriteResponse, 0, len(favs))
	for _, fav := range favs {
		item := favoriteResponse{
			GoodsID:    fav.GoodsID,
			CreatedAt:  fav.CreatedAt,
			Unresolved: fav.Unresolved,
		}
		if fav.Goods != nil {
			g := toGoodsResponse(fav.Goods)
			item.Goods = &g
		}
		out = append(out, item)
	}
	return favoritesResponse{Favorites: out}
}
