package api

// LoginRequest is the credential exchange payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenPair is the access/refresh pair returned by login and refresh. Both
// tokens are opaque; the client never parses them.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest creates a new Owner or Driver account.
type RegisterRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Username    string `json:"username" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=Owner Driver"`
}

// UserDetails is the identity payload from GET /api/user/details. Roles can
// carry several entries; session.ResolveRole collapses them to one.
type UserDetails struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	UserName       string   `json:"userName"`
	PhoneNumber    string   `json:"phoneNumber"`
	ProfilePicture string   `json:"profilePicture"`
	Roles          []string `json:"roles"`
}

// UpdateUserRequest updates mutable profile fields.
type UpdateUserRequest struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// Vehicle is a fleet vehicle, optionally with its hire-purchase terms.
type Vehicle struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Brand            string  `json:"brand,omitempty"`
	Model            string  `json:"model,omitempty"`
	PlateNumber      string  `json:"plateNumber"`
	Color            string  `json:"color"`
	IsActive         bool    `json:"isActive"`
	ContractType     string  `json:"contractType,omitempty"`
	Tenure           int     `json:"tenure,omitempty"`
	PaymentAmount    float64 `json:"paymentAmount,omitempty"`
	PaymentFrequency string  `json:"paymentFrequency,omitempty"`
	StartDate        string  `json:"startDate,omitempty"`
}

// CreateVehicleRequest registers a new vehicle.
type CreateVehicleRequest struct {
	Name            string  `json:"name" validate:"required"`
	Brand           string  `json:"brand" validate:"required"`
	Model           string  `json:"model" validate:"required"`
	PlateNumber     string  `json:"plateNumber" validate:"required"`
	Color           string  `json:"color" validate:"required"`
	UserID          string  `json:"userId,omitempty"`
	OwnerPercentage float64 `json:"ownerPercentage,omitempty" validate:"gte=0,lte=100"`
}

// ContractProgress is the repayment state of a hire-purchase contract as
// computed by the backend; the client only displays it.
type ContractProgress struct {
	VehicleID       string  `json:"vehicleId"`
	TotalValue      float64 `json:"totalValue"`
	PaidAmount      float64 `json:"paidAmount"`
	Percentage      float64 `json:"percentage"`
	RemainingAmount float64 `json:"remainingAmount"`
}

// CreateContractRequest starts a hire-purchase contract on a vehicle.
type CreateContractRequest struct {
	VehicleID        string  `json:"vehicleId" validate:"required"`
	DriverID         string  `json:"driverId" validate:"required"`
	ContractType     string  `json:"contractType" validate:"required"`
	Tenure           int     `json:"tenure" validate:"required,gt=0"`
	PaymentAmount    float64 `json:"paymentAmount" validate:"required,gt=0"`
	PaymentFrequency string  `json:"paymentFrequency" validate:"required,oneof=Daily Weekly Monthly"`
	StartDate        string  `json:"startDate" validate:"required"`
}

// Wallet is the user's wallet summary.
type Wallet struct {
	ID       string  `json:"id"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
	IsPinSet bool    `json:"isPinSet"`
}

// Transaction is one wallet ledger entry.
type Transaction struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`   // Commission, Collection, Withdrawal, Split
	Status      string  `json:"status"` // Pending, Completed, Failed
	CreatedAt   string  `json:"createdAt"`
	Description string  `json:"description"`
}

// TransactionPage is one page of transaction history.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
}

// WithdrawRequest moves funds from the wallet to a bank account. Reference is
// a client-generated idempotency key.
type WithdrawRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	BankAccountID string  `json:"bankAccountId" validate:"required"`
	PIN           string  `json:"pin" validate:"required,len=4,numeric"`
	Reference     string  `json:"reference,omitempty"`
}

// Bank is a supported withdrawal destination bank.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// BankAccount is a bank account saved against the user's wallet.
type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	BankCode      string `json:"bankCode"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}

// ResolvedAccount is the verification result for an account number.
type ResolvedAccount struct {
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
}
