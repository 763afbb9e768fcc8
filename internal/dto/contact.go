package dto

// ContactOwnerRequest asks the platform to reveal an owner's phone number.
type ContactOwnerRequest struct {
	PropertyID string `json:"property_id"`
}

// ContactOwnerResponse carries the owner contact and remaining quota.
type ContactOwnerResponse struct {
	Phone         string `json:"phone"`
	ContactsUsed  int    `json:"contacts_used"`
	ContactsLimit int    `json:"contacts_limit,omitempty"`
}
