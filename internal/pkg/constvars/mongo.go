package constvars

const (
	MongoCollectionUsers        = "users"
	MongoCollectionServices     = "services"
	MongoCollectionAppointments = "appointments"
)
