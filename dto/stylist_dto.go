package dto

type StylistChatDTO struct {
	Message string `json:"message" binding:"required"`
}

type ProductAdviceDTO struct {
	ProductID int64  `json:"productId" binding:"required"`
	Question  string `json:"question" binding:"required"`
}
