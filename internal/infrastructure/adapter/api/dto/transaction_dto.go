package dto

// IntentRequest represents the API request for a contribution or withdrawal intent
type IntentRequest struct {
	Kind        string `json:"kind"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// IntentResponse acknowledges a created monetary intent
type IntentResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	RedirectURL   string `json:"redirectUrl"`
}

// CallbackRequest represents the gateway's settlement notification
type CallbackRequest struct {
	CheckoutRequestID string `json:"checkoutRequestId" binding:"required"`
	Reference         string `json:"reference"`
	Status            string `json:"status" binding:"required,oneof=completed failed"`
}

// CallbackResponse acknowledges a processed notification back to the gateway
type CallbackResponse struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Duplicate     bool   `json:"duplicate"`
}

// TransactionResponse represents one ledger transaction in listings
type TransactionResponse struct {
	TransactionID string `json:"transactionId"`
	Kind          string `json:"kind"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	Description   string `json:"description,omitempty"`
	CreatedAt     string `json:"createdAt"`
	ProcessedAt   string `json:"processedAt,omitempty"`
}
