package liability

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies a debt obligation.
type Type string

const (
	TypeLoan             Type = "LOAN"
	TypeCreditCard       Type = "CREDIT_CARD"
	TypePayable          Type = "PAYABLE"
	TypeCommittedExpense Type = "COMMITTED_EXPENSE"
	TypeMortgage         Type = "MORTGAGE"
	TypePersonalLoan     Type = "PERSONAL_LOAN"
	TypeStudentLoan      Type = "STUDENT_LOAN"
	TypeCarLoan          Type = "CAR_LOAN"
	TypeOther            Type = "OTHER"
)

// Category splits debt into secured and unsecured.
type Category string

const (
	CategorySecured   Category = "SECURED"
	CategoryUnsecured Category = "UNSECURED"
)

// Term splits debt into short and long term.
type Term string

const (
	TermShort Term = "SHORT_TERM"
	TermLong  Term = "LONG_TERM"
)

// Liability is a user-maintained debt obligation. The balance is entered by
// the user, not amortized by the system.
type Liability struct {
	ID             uuid.UUID
	Name           string
	Type           Type
	Category       Category
	Term           Term
	OriginalAmount float64
	CurrentBalance float64
	InterestRate   float64
	MonthlyPayment float64
	StartDate      time.Time
	EndDate        *time.Time
	Currency       string
	Lender         string
	Description    string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
