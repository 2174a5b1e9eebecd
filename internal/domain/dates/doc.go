// Package dates holds the date policy shared by every date-bearing record
// form and list view: a Validator that gates submissions and a Detector that
// flags problems in records that are already stored.
//
// Both compare calendar dates only. Every value is normalized to midnight in
// the configured location before comparison, and "today" is read from the
// injected Clock on every call:
//
//	v := dates.NewValidator(dates.SystemClock(), dates.WithMinYear(1900))
//	if verdict := v.IsStartBeforeEndOrOngoing(start, end); !verdict.Valid {
//	    return verdict.Err()
//	}
//
//	d := dates.NewDetector(dates.SystemClock())
//	report := d.GetDateIssues(rec, dates.RangeFields("StartDate", "EndDate"))
//
// Validator methods never return errors for bad input; a bad value is itself
// a Verdict. The Detector is advisory and skips values it cannot parse.
package dates
