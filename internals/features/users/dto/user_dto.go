package dto

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo" validate:"omitempty,url"`
	Role  string `json:"role" validate:"omitempty,oneof=admin organizer attendee"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin organizer attendee"`
}

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}
