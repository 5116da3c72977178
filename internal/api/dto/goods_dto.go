package dto

import "github.com/spec-kit/goods-service/internal/domain"

// GoodsRequest payload for create and update.
type GoodsRequest struct {
	Name string `json:"goods_name" form:"goods_name"`
}

// GoodsItem is the wire projection of a goods record.
type GoodsItem struct {
	ID   string `json:"_id"`
	Name string `json:"goods_name"`
}

// NewGoodsItem projects a domain record.
func NewGoodsItem(goods *domain.Goods) GoodsItem {
	return GoodsItem{ID: goods.ID, Name: goods.Name}
}

// NewGoodsItems projects a list of domain records.
func NewGoodsItems(goods []domain.Goods) []GoodsItem {
	items := make([]GoodsItem, 0, len(goods))
	for i := range goods {
		items = append(items, NewGoodsItem(&goods[i]))
	}
	return items
}
