package models

// User roles.
const (
	RolePatient   = "patient"
	RoleClinician = "clinician"
	RoleAdmin     = "admin"
)

// User represents a portal account (patient, clinician or admin).
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	FCMToken  string `json:"fcmToken,omitempty"` // push target, empty when the device never registered
}

// ProfileUpdate carries the user-editable profile fields. Nil pointers
// leave the current value untouched.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Location  *string `json:"location,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}
