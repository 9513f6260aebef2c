package dto

import "github.com/luxeride/rental-service/internal/domain"

// ProfileResponse is the account's public shape.
type ProfileResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone,omitempty"`
	Role  domain.Role `json:"role"`
}

// NewProfileResponse maps a domain user.
func NewProfileResponse(u *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

// ProfileUpdateRequest payload.
type ProfileUpdateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// SettingsPayload carries display preferences both ways.
type SettingsPayload struct {
	Currency string `json:"currency"`
	Locale   string `json:"locale"`
}
