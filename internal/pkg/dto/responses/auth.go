package responses

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Auth struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}
