package entry

import "github.com/google/uuid"

// Profile is a user profile as entered at sign-up or in settings.
type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// Member is a participant of a group.
type Member struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Group is a set of people sharing expenses.
type Group struct {
	Name    string   `json:"name" yaml:"name"`
	Members []Member `json:"members" yaml:"members"`
}

// Split is one member's contribution to an expense.
type Split struct {
	Member string  `json:"member" yaml:"member"`
	Amount float64 `json:"amount" yaml:"amount"`
}

// Expense is a shared cost split between group members. ID is assigned by
// storage and may be empty for new expenses.
type Expense struct {
	ID          uuid.UUID `json:"id,omitzero" yaml:"id,omitempty"`
	GroupID     uuid.UUID `json:"group_id" yaml:"group_id"`
	Description string    `json:"description" yaml:"description"`
	Amount      float64   `json:"amount" yaml:"amount"`
	Currency    string    `json:"currency,omitempty" yaml:"currency,omitempty"`
	Splits      []Split   `json:"splits" yaml:"splits"`
}

// SplitAmounts returns the contributions in order.
func (e Expense) SplitAmounts() []float64 {
	amounts := make([]float64, 0, len(e.Splits))
	for _, s := range e.Splits {
		amounts = append(amounts, s.Amount)
	}
	return amounts
}

// Emails returns member emails in order, including empty ones.
func (g Group) Emails() []string {
	emails := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		emails = append(emails, m.Email)
	}
	return emails
}
