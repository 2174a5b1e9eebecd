package record

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/faculty-portal/internal/domain"
)

// Kind identifies one of the date-bearing faculty record types.
type Kind string

const (
	KindAward       Kind = "award"
	KindPublication Kind = "publication"
	KindEvent       Kind = "event"
	KindResearch    Kind = "research"
	KindTeaching    Kind = "teaching"
	KindOutreach    Kind = "outreach"
)

// Kinds returns every record kind in dashboard order.
func Kinds() []Kind {
	return []Kind{KindResearch, KindEvent, KindTeaching, KindOutreach, KindAward, KindPublication}
}

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	switch k {
	case KindAward, KindPublication, KindEvent, KindResearch, KindTeaching, KindOutreach:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts a kind name case-insensitively, with or without a
// trailing "s" ("awards", "Events"). Unknown names wrap domain.ErrNotFound so
// that routes for them answer 404.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if k := Kind(name); k.IsValid() {
		return k, nil
	}
	if k := Kind(strings.TrimSuffix(name, "s")); k.IsValid() {
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown record kind %q", domain.ErrNotFound, s)
}
