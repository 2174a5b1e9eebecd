// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"strings"
	"time"

	appctx "github.com/jsamuelsen11/faculty-portal/internal/app/context"
	"github.com/jsamuelsen11/faculty-portal/internal/app/fanout"
	"github.com/jsamuelsen11/faculty-portal/internal/domain"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
	"github.com/jsamuelsen11/faculty-portal/internal/domain/record"
	"github.com/jsamuelsen11/faculty-portal/internal/platform/metrics"
	"github.com/jsamuelsen11/faculty-portal/internal/ports"
)

// Compile-time check that RecordService implements ports.RecordService.
var _ ports.RecordService = (*RecordService)(nil)

// DefaultDashboardWorkers bounds dashboard fan-out when no option is given.
const DefaultDashboardWorkers = 4

// RecordService implements ports.RecordService on top of the records API.
// Submissions are gated by the kind's date rule before any downstream call;
// reads are annotated with advisory issues. "Today" is pinned per request.
type RecordService struct {
	client     ports.RecordClient
	validator  *dates.Validator
	detector   *dates.Detector
	metrics    *metrics.Metrics
	logger     *slog.Logger
	maxWorkers int
}

// RecordServiceOption configures optional RecordService collaborators.
type RecordServiceOption func(*RecordService)

// WithMetrics records verdicts and issues on m.
func WithMetrics(m *metrics.Metrics) RecordServiceOption {
	return func(s *RecordService) { s.metrics = m }
}

// WithDashboardWorkers bounds how many record kinds the dashboard reads at
// once.
func WithDashboardWorkers(n int) RecordServiceOption {
	return func(s *RecordService) {
		if n > 0 {
			s.maxWorkers = n
		}
	}
}

// NewRecordService creates a RecordService. A nil logger discards output.
func NewRecordService(
	client ports.RecordClient,
	validator *dates.Validator,
	detector *dates.Detector,
	logger *slog.Logger,
	opts ...RecordServiceOption,
) *RecordService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &RecordService{
		client:     client,
		validator:  validator,
		detector:   detector,
		logger:     logger,
		maxWorkers: DefaultDashboardWorkers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRecords returns a faculty member's records of one kind with their
// date issues.
func (s *RecordService) ListRecords(ctx context.Context, kind record.Kind, facultyID string) ([]record.Annotated, error) {
	policy, err := record.PolicyFor(kind)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing records",
		slog.String("record_kind", kind.String()),
		slog.String("faculty_id", facultyID),
	)

	recs, err := s.client.ListRecords(ctx, kind, facultyID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list records",
			slog.String("operation", "ListRecords"),
			slog.String("record_kind", kind.String()),
			slog.String("faculty_id", facultyID),
			slog.Any("error", err),
		)
		return nil, err
	}

	v, d := s.judges(ctx)
	out := make([]record.Annotated, 0, len(recs))
	for i := range recs {
		out = append(out, s.annotate(policy, v, d, &recs[i]))
	}
	return out, nil
}

// GetRecord returns a single record with its date issues.
func (s *RecordService) GetRecord(ctx context.Context, kind record.Kind, id string) (*record.Annotated, error) {
	policy, err := record.PolicyFor(kind)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "fetching record",
		slog.String("record_kind", kind.String()),
		slog.String("id", id),
	)

	rec, err := s.fetch(ctx, kind, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch record",
			slog.String("operation", "GetRecord"),
			slog.String("record_kind", kind.String()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	v, d := s.judges(ctx)
	annotated := s.annotate(policy, v, d, rec)
	return &annotated, nil
}

// CreateRecord validates rec against its kind's date rule and creates it.
// A rejected record never reaches the records API.
func (s *RecordService) CreateRecord(ctx context.Context, rec *record.Record) (*record.Annotated, error) {
	if rec == nil {
		return nil, domain.NewValidationError("record", domain.MsgRequired)
	}
	policy, err := record.PolicyFor(rec.Kind)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(rec.FacultyID) == "" {
		return nil, domain.NewValidationError("faculty_id", domain.MsgRequired)
	}

	s.logger.InfoContext(ctx, "creating record",
		slog.String("record_kind", rec.Kind.String()),
		slog.String("faculty_id", rec.FacultyID),
	)

	v, d := s.judges(ctx)
	if err := s.gate(ctx, "CreateRecord", policy, v, rec); err != nil {
		return nil, err
	}

	created, err := s.client.CreateRecord(ctx, rec)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create record",
			slog.String("operation", "CreateRecord"),
			slog.String("record_kind", rec.Kind.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.remember(ctx, created)
	annotated := s.annotate(policy, v, d, created)
	return &annotated, nil
}

// UpdateRecord overlays patch onto the stored record and replaces it once
// the merged record passes its date rule. Validating the merged record means
// a patch that only moves the end date is still checked against the stored
// start date.
func (s *RecordService) UpdateRecord(ctx context.Context, kind record.Kind, id string, patch map[string]any) (*record.Annotated, error) {
	policy, err := record.PolicyFor(kind)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updating record",
		slog.String("record_kind", kind.String()),
		slog.String("id", id),
	)

	existing, err := s.fetch(ctx, kind, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch record for update",
			slog.String("operation", "UpdateRecord"),
			slog.String("record_kind", kind.String()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	merged := existing.Clone()
	merged.Merge(patch)
	if title := merged.AttrString(policy.TitleField); title != "" {
		merged.Title = title
	}

	v, d := s.judges(ctx)
	if err := s.gate(ctx, "UpdateRecord", policy, v, merged); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateRecord(ctx, id, merged)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update record",
			slog.String("operation", "UpdateRecord"),
			slog.String("record_kind", kind.String()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.remember(ctx, updated)
	annotated := s.annotate(policy, v, d, updated)
	return &annotated, nil
}

// DeleteRecord deletes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, kind record.Kind, id string) error {
	if _, err := record.PolicyFor(kind); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleting record",
		slog.String("record_kind", kind.String()),
		slog.String("id", id),
	)

	if err := s.client.DeleteRecord(ctx, kind, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete record",
			slog.String("operation", "DeleteRecord"),
			slog.String("record_kind", kind.String()),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}

	if rc, ok := appctx.FromContext(ctx); ok {
		rc.Forget(cacheKey(kind, id))
	}
	return nil
}

// Dashboard reads every record kind of a faculty member concurrently and
// turns the flagged counts into warning sentences. A kind that fails to load
// is reported in its summary; the others still count.
func (s *RecordService) Dashboard(ctx context.Context, facultyID string) (*ports.Dashboard, error) {
	if strings.TrimSpace(facultyID) == "" {
		return nil, domain.NewValidationError("faculty_id", domain.MsgRequired)
	}

	start := time.Now()
	s.logger.InfoContext(ctx, "building dashboard", slog.String("faculty_id", facultyID))

	kinds := record.Kinds()
	results := fanout.Run(ctx, s.maxWorkers, kinds, func(ctx context.Context, k record.Kind) (ports.KindSummary, error) {
		recs, err := s.ListRecords(ctx, k, facultyID)
		if err != nil {
			return ports.KindSummary{}, err
		}
		sum := ports.KindSummary{Total: len(recs)}
		for _, r := range recs {
			if r.Issues.HasIssue {
				sum.Flagged++
			}
		}
		return sum, nil
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dash := &ports.Dashboard{
		FacultyID: facultyID,
		Kinds:     make([]ports.KindSummary, 0, len(kinds)),
		Warnings:  []string{},
	}
	for i, res := range results {
		sum := res.Value
		sum.Kind = kinds[i]
		sum.Err = res.Err

		switch {
		case res.Err != nil:
			s.metrics.ObserveDashboardFailure(kinds[i].String())
			s.logger.WarnContext(ctx, "dashboard kind unavailable",
				slog.String("operation", "Dashboard"),
				slog.String("record_kind", kinds[i].String()),
				slog.String("faculty_id", facultyID),
				slog.Any("error", res.Err),
			)
		case sum.Flagged > 0:
			policy, _ := record.PolicyFor(kinds[i])
			dash.Warnings = append(dash.Warnings, policy.Warning(sum.Flagged))
		}
		dash.Kinds = append(dash.Kinds, sum)
	}

	s.metrics.ObserveDashboard(time.Since(start).Seconds())
	return dash, nil
}

// judges returns the validator and detector pinned to the request's clock.
func (s *RecordService) judges(ctx context.Context) (*dates.Validator, *dates.Detector) {
	clock := appctx.Clock(ctx)
	return s.validator.WithClock(clock), s.detector.WithClock(clock)
}

// gate runs the submission rule and logs a rejection at INFO. Rejections are
// user input errors, not service failures.
func (s *RecordService) gate(ctx context.Context, op string, policy record.Policy, v *dates.Validator, rec *record.Record) error {
	verdict := policy.Check(v, rec)
	s.metrics.ObserveVerdict(policy.Kind.String(), verdict.Kind.String())

	if err := policy.Validate(v, rec); err != nil {
		s.logger.InfoContext(ctx, "record rejected",
			slog.String("operation", op),
			slog.String("record_kind", policy.Kind.String()),
			slog.String("verdict_kind", verdict.Kind.String()),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func (s *RecordService) annotate(policy record.Policy, v *dates.Validator, d *dates.Detector, rec *record.Record) record.Annotated {
	report := policy.Inspect(d, v, rec)
	if report.HasIssue {
		kinds := make([]string, 0, len(report.Issues))
		for _, is := range report.Issues {
			kinds = append(kinds, is.Kind.String())
		}
		s.metrics.ObserveIssues(policy.Kind.String(), kinds)
	}
	return record.Annotated{Record: *rec, Issues: report}
}

// fetch reads a record through the request cache when one is present. The
// caller's ctx is used for the call so its deadline and span apply.
func (s *RecordService) fetch(ctx context.Context, kind record.Kind, id string) (*record.Record, error) {
	rc, ok := appctx.FromContext(ctx)
	if !ok {
		return s.client.GetRecord(ctx, kind, id)
	}
	return appctx.GetOrFetch(rc, cacheKey(kind, id), func(context.Context) (*record.Record, error) {
		return s.client.GetRecord(ctx, kind, id)
	})
}

func (s *RecordService) remember(ctx context.Context, rec *record.Record) {
	if rc, ok := appctx.FromContext(ctx); ok && rec != nil && rec.ID != "" {
		rc.Store(cacheKey(rec.Kind, rec.ID), rec)
	}
}

func cacheKey(kind record.Kind, id string) string {
	return kind.String() + ":" + id
}
