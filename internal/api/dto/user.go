package dto

type SignupDTO struct {
	Nickname string `json:"nickname" binding:"required" validate:"required,min=2,max=20"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8,max=30"`
}

type SigninDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID       uint64 `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

type TokenDTO struct {
	Token string `json:"token"`
}
