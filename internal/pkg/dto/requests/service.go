package requests

type CreateService struct {
	Name          string   `json:"name" validate:"required"`
	NameAr        string   `json:"nameAr" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	DescriptionAr string   `json:"descriptionAr" validate:"required"`
	Category      string   `json:"category" validate:"required,oneof=hair nails facial massage makeup other"`
	Duration      int      `json:"duration" validate:"required,gt=0"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Image         string   `json:"image" validate:"required"`
	StaffIDs      []string `json:"staff"`
	Requirements  []string `json:"requirements"`
	MaxGroupSize  int      `json:"maxGroupSize" validate:"omitempty,gt=0"`
	Discount      float64  `json:"discount" validate:"omitempty,min=0,max=100"`
}

type UpdateService struct {
	Name          string   `json:"name"`
	NameAr        string   `json:"nameAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Category      string   `json:"category" validate:"omitempty,oneof=hair nails facial massage makeup other"`
	Duration      int      `json:"duration" validate:"omitempty,gt=0"`
	Price         float64  `json:"price" validate:"omitempty,gt=0"`
	Image         string   `json:"image"`
	Requirements  []string `json:"requirements"`
	MaxGroupSize  int      `json:"maxGroupSize" validate:"omitempty,gt=0"`
	Discount      float64  `json:"discount" validate:"omitempty,min=0,max=100"`
}

// ListServices is bound from query parameters of the catalog listing.
type ListServices struct {
	Category string `json:"category" validate:"omitempty,oneof=hair nails facial massage makeup other"`
	Search   string `json:"search"`
	Sort     string `json:"sort" validate:"omitempty,oneof=popular price_asc price_desc name"`
}
