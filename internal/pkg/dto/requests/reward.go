package requests

type AddPoints struct {
	CustomerID string `json:"customerId" validate:"required"`
	Points     int    `json:"points" validate:"required,gt=0"`
	Reason     string `json:"reason"`
}

type RedeemPoints struct {
	CustomerID string `json:"customerId" validate:"required"`
	Points     int    `json:"points" validate:"required,gt=0"`
	ServiceID  string `json:"serviceId"`
}
