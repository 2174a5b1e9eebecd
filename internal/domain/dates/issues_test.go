package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/faculty-portal/internal/domain/dates"
)

func newDetector() *dates.Detector {
	return dates.NewDetector(dates.FixedClock(testNow), dates.WithLocation(time.UTC))
}

var rangeSpec = dates.RangeFields("StartDate", "EndDate")

func TestGetDateIssues_Range(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  map[string]any
		want []string
	}{
		{
			name: "future start and inverted range",
			rec:  map[string]any{"StartDate": "2024-07-01", "EndDate": "2024-06-01"},
			want: []string{"Start date is in the future", "End date is before start date"},
		},
		{
			name: "clean closed range",
			rec:  map[string]any{"StartDate": "2023-01-01", "EndDate": "2023-06-01"},
			want: []string{},
		},
		{
			name: "ongoing",
			rec:  map[string]any{"StartDate": "2023-01-01", "EndDate": nil},
			want: []string{},
		},
		{
			name: "both in the future and ordered",
			rec:  map[string]any{"StartDate": "2025-01-01", "EndDate": "2025-02-01"},
			want: []string{"Start date is in the future", "End date is in the future"},
		},
		{
			name: "every rule fires",
			rec:  map[string]any{"StartDate": "2025-03-01", "EndDate": "2025-02-01"},
			want: []string{"Start date is in the future", "End date is in the future", "End date is before start date"},
		},
		{
			name: "equal dates are not inverted",
			rec:  map[string]any{"StartDate": "2023-01-01", "EndDate": "2023-01-01"},
			want: []string{},
		},
		{
			name: "stored timestamps",
			rec:  map[string]any{"StartDate": "2024-06-15T23:00:00.000Z", "EndDate": "2024-06-16T00:00:00.000Z"},
			want: []string{"End date is in the future"},
		},
		{
			name: "malformed start is skipped",
			rec:  map[string]any{"StartDate": "garbage", "EndDate": "2023-01-01"},
			want: []string{},
		},
		{
			name: "malformed future end is skipped",
			rec:  map[string]any{"StartDate": "2023-01-01", "EndDate": "2030-99-99"},
			want: []string{},
		},
		{
			name: "non-string value is skipped",
			rec:  map[string]any{"StartDate": 20250101, "EndDate": true},
			want: []string{},
		},
		{
			name: "time values",
			rec: map[string]any{
				"StartDate": time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC),
				"EndDate":   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			},
			want: []string{"Start date is in the future", "End date is before start date"},
		},
		{
			name: "missing fields",
			rec:  map[string]any{"Title": "Workshop"},
			want: []string{},
		},
	}

	d := newDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := d.GetDateIssues(tt.rec, rangeSpec)
			assert.Equal(t, tt.want, got.Messages())
			assert.Equal(t, len(tt.want) > 0, got.HasIssue)
		})
	}
}

func TestGetDateIssues_Single(t *testing.T) {
	t.Parallel()

	d := newDetector()
	spec := dates.SingleField("ActivityDate")

	got := d.GetDateIssues(map[string]any{"ActivityDate": "2024-06-16"}, spec)
	require.True(t, got.HasIssue)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, "ActivityDate is in the future", got.Issues[0].Message)
	assert.Equal(t, "ActivityDate", got.Issues[0].Field)
	assert.Equal(t, dates.KindFutureDate, got.Issues[0].Kind)

	got = d.GetDateIssues(map[string]any{"ActivityDate": "2024-06-15"}, spec)
	assert.False(t, got.HasIssue)
	assert.Empty(t, got.Issues)

	got = d.GetDateIssues(map[string]any{"ActivityDate": ""}, spec)
	assert.False(t, got.HasIssue)
}

func TestGetDateIssues_AddingFutureEndAddsOneIssue(t *testing.T) {
	t.Parallel()

	d := newDetector()
	rec := map[string]any{"StartDate": "2023-01-01"}

	before := d.GetDateIssues(rec, rangeSpec)
	rec["EndDate"] = "2024-12-31"
	after := d.GetDateIssues(rec, rangeSpec)

	require.Len(t, after.Issues, len(before.Issues)+1)
	assert.Equal(t, "End date is in the future", after.Issues[len(after.Issues)-1].Message)
}

func TestGetDateIssues_ZeroSpec(t *testing.T) {
	t.Parallel()

	got := newDetector().GetDateIssues(map[string]any{"StartDate": "2030-01-01"}, dates.FieldSpec{})
	assert.False(t, got.HasIssue)
	assert.NotNil(t, got.Issues)
}

func TestGetDateIssues_DoesNotMutateRecord(t *testing.T) {
	t.Parallel()

	rec := map[string]any{"StartDate": "2025-01-01", "EndDate": "2024-01-01"}
	_ = newDetector().GetDateIssues(rec, rangeSpec)

	assert.Equal(t, map[string]any{"StartDate": "2025-01-01", "EndDate": "2024-01-01"}, rec)
}

func TestFieldSpec_Accessors(t *testing.T) {
	t.Parallel()

	single := dates.SingleField("ActivityDate")
	name, ok := single.Single()
	assert.True(t, ok)
	assert.Equal(t, "ActivityDate", name)
	_, _, ok = single.Range()
	assert.False(t, ok)

	start, end, ok := rangeSpec.Range()
	assert.True(t, ok)
	assert.Equal(t, "StartDate", start)
	assert.Equal(t, "EndDate", end)

	assert.True(t, dates.FieldSpec{}.IsZero())
	assert.False(t, single.IsZero())
}
