package entity

// UserAuth identifies an authenticated API caller.
type UserAuth struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
