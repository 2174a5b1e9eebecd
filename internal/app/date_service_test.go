package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/jsamuelsen11/faculty-portal/internal/domain"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/metrics"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

func newDateService(m *metrics.Metrics) *DateService {
	v := dates.NewValidator(nil, dates.WithLocation(time.UTC), dates.WithMinYear(1950))
	d := dates.NewDetector(nil, dates.WithLocation(time.UTC))
	return NewDateService(v, d, m, discardLogger())
}

func TestDateService_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		check     ports.DateCheck
		wantValid bool
		wantKind  dates.Kind
		wantMsg   string
	}{
		{
			name:      "date today",
			check:     ports.DateCheck{Rule: ports.RuleDate, Date: "2024-06-15"},
			wantValid: true,
		},
		{
			name:     "date tomorrow",
			check:    ports.DateCheck{Rule: ports.RuleDate, Date: "2024-06-16"},
			wantKind: dates.KindFutureDate,
			wantMsg:  "Date cannot be in the future.",
		},
		{
			name:     "configured minimum year applies",
			check:    ports.DateCheck{Rule: ports.RuleDate, Date: "1920-01-01"},
			wantKind: dates.KindOutOfRange,
			wantMsg:  "Date cannot be before 1950.",
		},
		{
			name:      "explicit minimum year wins",
			check:     ports.DateCheck{Rule: ports.RuleDate, Date: "1920-01-01", MinYear: 1900},
			wantValid: true,
		},
		{
			name:     "year ahead",
			check:    ports.DateCheck{Rule: ports.RuleYear, Year: "2025"},
			wantKind: dates.KindOutOfRange,
			wantMsg:  "Year cannot be after 2024.",
		},
		{
			name:     "closed range missing end",
			check:    ports.DateCheck{Rule: ports.RuleRange, Start: "2024-01-01"},
			wantKind: dates.KindMissingValue,
			wantMsg:  "Both start and end dates are required.",
		},
		{
			name:      "ongoing range",
			check:     ports.DateCheck{Rule: ports.RuleRangeOrOngoing, Start: "2024-01-01"},
			wantValid: true,
		},
	}

	svc := newDateService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := svc.Validate(requestCtx(), tt.check)
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if got.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.wantValid)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Message() != tt.wantMsg {
				t.Errorf("Message() = %q, want %q", got.Message(), tt.wantMsg)
			}
		})
	}
}

func TestDateService_Validate_UnknownRule(t *testing.T) {
	t.Parallel()

	_, err := newDateService(nil).Validate(context.Background(), ports.DateCheck{Rule: "weekday"})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() error = %v, want *ValidationError", err)
	}
	if _, ok := verr.Fields["rule"]; !ok {
		t.Errorf("Fields = %v, want a rule entry", verr.Fields)
	}
}

func TestDateService_Issues(t *testing.T) {
	t.Parallel()
	m := metrics.New(prometheus.NewRegistry())
	svc := newDateService(m)

	report, err := svc.Issues(requestCtx(),
		map[string]any{"StartDate": "2024-07-01", "EndDate": "2024-06-01"},
		dates.RangeFields("StartDate", "EndDate"))
	if err != nil {
		t.Fatalf("Issues() error = %v", err)
	}
	if !report.HasIssue || len(report.Issues) != 2 {
		t.Errorf("Issues() = %v, want two issues", report.Messages())
	}
	if c := testutil.ToFloat64(m.Issues.WithLabelValues(adHocKind, "invalid_ordering")); c != 1 {
		t.Errorf("invalid_ordering count = %v, want 1", c)
	}

	_, err = svc.Issues(requestCtx(), map[string]any{}, dates.FieldSpec{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Issues(zero spec) error = %v, want ErrValidation", err)
	}
}
