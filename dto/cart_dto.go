package dto

// AddCartItemDTO requires a size up front: adding without a selected
// size is a validation failure, blocked before any state mutation.
type AddCartItemDTO struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

type RemoveCartItemDTO struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

type UpdateQuantityDTO struct {
	ProductID int64  `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
}

type CartDrawerDTO struct {
	Open bool `json:"open"`
}

type ToggleWishlistDTO struct {
	ProductID int64 `json:"productId" binding:"required"`
}
