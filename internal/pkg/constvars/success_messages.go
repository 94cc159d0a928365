package constvars

const (
	RegisterSuccessMessage          = "Successfully registered user"
	LoginSuccessMessage             = "Successfully logged in"
	GetProfileSuccessMessage        = "Successfully fetched profile"
	GetServicesSuccessMessage       = "Successfully fetched services"
	GetServiceSuccessMessage        = "Successfully fetched service"
	CreateServiceSuccessMessage     = "Successfully created service"
	UpdateServiceSuccessMessage     = "Successfully updated service"
	DeleteServiceSuccessMessage     = "Successfully deleted service"
	CreateAppointmentSuccessMessage = "Successfully booked appointment"
	GetAppointmentsSuccessMessage   = "Successfully fetched appointments"
	UpdateStatusSuccessMessage      = "Successfully updated appointment status"
	CancelAppointmentSuccessMessage = "Successfully cancelled appointment"
	GetAvailableSlotsSuccessMessage = "Successfully fetched available slots"
	GetRewardsSuccessMessage        = "Successfully fetched rewards"
	AddPointsSuccessMessage         = "Successfully added points"
	RedeemPointsSuccessMessage      = "Successfully redeemed points"
	GetRewardsHistorySuccessMessage = "Successfully fetched rewards history"
	GetRewardsTiersSuccessMessage   = "Successfully fetched rewards tiers"
)
