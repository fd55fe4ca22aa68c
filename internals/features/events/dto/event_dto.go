package dto

type CreateEventRequest struct {
	Title          string  `json:"title" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	Image          string  `json:"image" validate:"omitempty,url"`
	Date           string  `json:"date" validate:"required"`
	Time           string  `json:"time"`
	Location       string  `json:"location" validate:"required"`
	Category       string  `json:"category"`
	TotalTickets   int     `json:"totalTickets" validate:"gte=0"`
	TicketPrice    float64 `json:"ticketPrice" validate:"gte=0"`
	OrganizerEmail string  `json:"organizerEmail" validate:"required,email"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved denied"`
}
