package dto

// CreateProductDTO is the admin add-product payload; it travels as the
// "data" field of a multipart form next to the image files.
type CreateProductDTO struct {
	Name        string   `json:"name" binding:"required,min=3"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Discount    float64  `json:"discount" binding:"gte=0,lte=100"`
	Category    string   `json:"category" binding:"required"`
	Sizes       []string `json:"sizes" binding:"required,min=1"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Fabric      string   `json:"fabric"`
	Fit         string   `json:"fit"`
	Care        string   `json:"care"`
	IsNew       bool     `json:"isNew"`
	Tags        []string `json:"tags"`
}

// BrowseQueryDTO carries browse-state commands as query parameters;
// each present field is applied as one UI event.
type BrowseQueryDTO struct {
	Category    *string  `form:"category"`
	Sort        *string  `form:"sort" binding:"omitempty,sortoption"`
	ToggleColor *string  `form:"toggleColor"`
	ToggleSize  *string  `form:"toggleSize"`
	MaxPrice    *float64 `form:"maxPrice" binding:"omitempty,gte=0"`
}
