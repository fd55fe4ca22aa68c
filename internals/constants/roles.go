package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleAttendee  = "attendee"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess     = "Only admins can access %s."
	ErrOnlyOrganizersCanAccess = "Only organizers can access %s."
	ErrOnlyAttendeesCanAccess  = "Only attendees can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOrganizer(feature string) string {
	return fmt.Sprintf(ErrOnlyOrganizersCanAccess, feature)
}

func RoleErrorAttendee(feature string) string {
	return fmt.Sprintf(ErrOnlyAttendeesCanAccess, feature)
}
