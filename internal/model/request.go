package model

// Request shapes arrive as raw text, exactly as typed into a form.
// Numeric fields are coerced by the component that validates them.

// LoginRequest carries a credential pair.
type LoginRequest struct {
	Username string
	PIN      string
}

// TransferRequest moves Amount from the current account to To.
type TransferRequest struct {
	To     string
	Amount string
}

// LoanRequest asks for Amount to be credited to the current account.
type LoanRequest struct {
	Amount string
}

// CloseRequest confirms the closure of the current account.
type CloseRequest struct {
	Username string
	PIN      string
}
