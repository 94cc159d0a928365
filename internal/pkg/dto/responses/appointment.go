package responses

// AvailableSlots carries the ordered bookable start instants as RFC3339
// strings.
type AvailableSlots struct {
	Slots []string `json:"availableSlots"`
}
