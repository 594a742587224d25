package domain

import "fmt"

// ScopeKind discriminates the two shift scopes
type ScopeKind string

const (
	// ScopeEstablishment means the shift defines opening hours for the
	// whole establishment
	ScopeEstablishment ScopeKind = "establishment"
	// ScopeProfessional means the shift belongs to one professional
	ScopeProfessional ScopeKind = "professional"
)

// Scope is the dimension along which shift conflicts are evaluated.
// It is an explicit two-case type rather than a nullable professional
// id, so conflict and filter code switches on Kind exhaustively.
// Establishment-wide and professional scopes never conflict with each
// other; professional scopes conflict only for the same professional.
type Scope struct {
	Kind           ScopeKind
	ProfessionalID int64 // set only when Kind == ScopeProfessional
}

// EstablishmentScope returns the establishment-wide scope
func EstablishmentScope() Scope {
	return Scope{Kind: ScopeEstablishment}
}

// ProfessionalScope returns the scope of a single professional
func ProfessionalScope(professionalID int64) Scope {
	return Scope{Kind: ScopeProfessional, ProfessionalID: professionalID}
}

// Equal reports whether two scopes denote the same conflict domain
func (s Scope) Equal(other Scope) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.Kind == ScopeProfessional {
		return s.ProfessionalID == other.ProfessionalID
	}
	return true
}

// IsProfessional returns true for a professional-specific scope
func (s Scope) IsProfessional() bool {
	return s.Kind == ScopeProfessional
}

// Validate checks the kind/id combination is coherent
func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeEstablishment:
		if s.ProfessionalID != 0 {
			return fmt.Errorf("establishment scope must not carry a professional id")
		}
		return nil
	case ScopeProfessional:
		if s.ProfessionalID <= 0 {
			return fmt.Errorf("professional scope requires a positive professional id")
		}
		return nil
	default:
		return fmt.Errorf("unknown scope kind %q", s.Kind)
	}
}

func (s Scope) String() string {
	if s.Kind == ScopeProfessional {
		return fmt.Sprintf("professional(%d)", s.ProfessionalID)
	}
	return "establishment"
}
