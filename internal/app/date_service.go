package app

import (
	"context"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/faculty-portal/internal/app/context"
	"github.com/jsamuelsen11/faculty-portal/internal/domain"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/metrics"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// Compile-time check that DateService implements ports.DateValidationService.
var _ ports.DateValidationService = (*DateService)(nil)

// adHocKind labels verdicts that were not made for a stored record kind.
const adHocKind = "ad_hoc"

// DateService implements ports.DateValidationService. It is stateless apart
// from the configured validator and detector.
type DateService struct {
	validator *dates.Validator
	detector  *dates.Detector
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewDateService creates a DateService. A nil logger discards output; nil
// metrics record nothing.
func NewDateService(validator *dates.Validator, detector *dates.Detector, m *metrics.Metrics, logger *slog.Logger) *DateService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DateService{
		validator: validator,
		detector:  detector,
		metrics:   m,
		logger:    logger,
	}
}

// Validate runs the rule named by check against the request's "today".
func (s *DateService) Validate(ctx context.Context, check ports.DateCheck) (dates.Verdict, error) {
	if !check.Rule.IsValid() {
		return dates.Verdict{}, domain.NewValidationError("rule", fmt.Sprintf("invalid: %q", check.Rule))
	}

	v := s.validator.WithClock(appctx.Clock(ctx))
	minYear := check.MinYear
	if minYear == 0 {
		minYear = v.MinYear()
	}

	var verdict dates.Verdict
	switch check.Rule {
	case ports.RuleDate:
		verdict = v.IsRealisticDateSince(check.Date, minYear)
	case ports.RuleYear:
		verdict = v.IsRealisticYearSince(check.Year, minYear)
	case ports.RuleRange:
		verdict = v.IsStartBeforeEnd(check.Start, check.End)
	case ports.RuleRangeOrOngoing:
		verdict = v.IsStartBeforeEndOrOngoing(check.Start, check.End)
	}

	s.metrics.ObserveVerdict(adHocKind, verdict.Kind.String())
	s.logger.DebugContext(ctx, "date checked",
		slog.String("rule", string(check.Rule)),
		slog.Bool("valid", verdict.Valid),
		slog.String("verdict_kind", verdict.Kind.String()),
	)
	return verdict, nil
}

// Issues inspects rec with the detector pinned to the request's "today".
func (s *DateService) Issues(ctx context.Context, rec map[string]any, spec dates.FieldSpec) (dates.IssueReport, error) {
	if spec.IsZero() {
		return dates.IssueReport{}, domain.NewValidationError("fields", domain.MsgRequired)
	}

	report := s.detector.WithClock(appctx.Clock(ctx)).GetDateIssues(rec, spec)
	if report.HasIssue {
		kinds := make([]string, 0, len(report.Issues))
		for _, is := range report.Issues {
			kinds = append(kinds, is.Kind.String())
		}
		s.metrics.ObserveIssues(adHocKind, kinds)
	}
	return report, nil
}
