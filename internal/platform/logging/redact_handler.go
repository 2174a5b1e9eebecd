package logging

import (
	"log/slog"
	"maps"
	"regexp"
	"slices"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach the
// logs. The HTTP middleware's RedactHeaders reads the same set.
var SensitiveHeaders = map[string]bool{
	"authorization":    true,
	"x-api-key":        true,
	"cookie":           true,
	"set-cookie":       true,
	"x-portal-session": true,
}

// sensitiveFields are attribute keys redacted wherever they appear. Faculty
// contact details ride along on profile-linked records.
var sensitiveFields = []string{"password", "secret", "token", "email", "phone"}

var sensitivePrefixes = []string{"secret_", "api_key"}

// Value patterns catch credentials logged under an innocent key.
var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Ten characters per segment keeps version strings like 1.2.3 out.
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
)

// redactor returns the masq ReplaceAttr hook. Struct fields tagged
// `masq:"secret"` are redacted as well.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{masq.WithTag("secret")}
	for _, name := range slices.Sorted(maps.Keys(SensitiveHeaders)) {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range []*regexp.Regexp{bearerPattern, jwtPattern, apiKeyInlinePattern} {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
