package dto

// RegistrationRequest represents the API request for starting a paid registration
type RegistrationRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Amount    string `json:"amount" binding:"required"`
}

// RegistrationResponse acknowledges a pending registration. The user record
// is not created until the gateway confirms payment.
type RegistrationResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	RedirectURL   string `json:"redirectUrl"`
}
