package models

// UserProfile is the display profile kept under the user_info key.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserDetail is the account record returned by the backend.
type UserDetail struct {
	UserID     string  `json:"userId"`
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	AvatarURL  *string `json:"avatarUrl"`
	Active     bool    `json:"active"`
	CreateTime string  `json:"createTime"`
	UpdateTime string  `json:"updateTime"`
}
