package dto

type AddToLikedRequest struct {
	Username    string   `json:"username" validate:"required,email"`
	LikedEvents []string `json:"likedEvents" validate:"required"`
}
