package dto

// OpenAccountRequest represents the API request for opening a pension account
type OpenAccountRequest struct {
	UserID uint64 `json:"userId" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=individual employer_sponsored voluntary"`
}

// AccountResponse represents the API response for an account
type AccountResponse struct {
	AccountID uint64 `json:"accountId"`
	UserID    uint64 `json:"userId"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Version   uint64 `json:"version"`
}

// BalanceResponse represents the API response for an account balance
type BalanceResponse struct {
	AccountID              uint64 `json:"accountId"`
	CurrentBalance         string `json:"currentBalance"`
	AvailableBalance       string `json:"availableBalance"`
	LockedBalance          string `json:"lockedBalance"`
	EmployeeContributions  string `json:"employeeContributions"`
	EmployerContributions  string `json:"employerContributions"`
	VoluntaryContributions string `json:"voluntaryContributions"`
	InterestEarned         string `json:"interestEarned"`
	TotalWithdrawn         string `json:"totalWithdrawn"`
	Version                uint64 `json:"version"`
}
