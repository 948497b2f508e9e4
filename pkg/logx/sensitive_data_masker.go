package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Student attributes that must not end up in request/response dumps. Both the
// JSON API (camelCase keys) and the HTML form (snake_case keys) are covered.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`("tuitionFee":\s?)[-+0-9.eE]+()`),
	regexp.MustCompile(`(?s)("relationship":\s?").+?(")`),
	regexp.MustCompile(`(?s)("smoker":\s?").+?(")`),
	regexp.MustCompile(`(?s)("parentStatus":\s?").+?(")`),
	// Form fields.
	regexp.MustCompile(`(tuition_fee=)[^&\r\n]*()`),
	regexp.MustCompile(`(relationship=)[^&\r\n]*()`),
	regexp.MustCompile(`(smoker=)[^&\r\n]*()`),
	regexp.MustCompile(`(Pstatus=)[^&\r\n]*()`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
