package validation

// ViolationCode identifies one way a candidate value can fail validation.
type ViolationCode string

const (
	CodeRequiredFieldMissing      ViolationCode = "RequiredFieldMissing"
	CodeInvalidFormatForType      ViolationCode = "InvalidFormatForType"
	CodeInvalidSelectOption       ViolationCode = "InvalidSelectOption"
	CodeBelowMinLength            ViolationCode = "BelowMinLength"
	CodeAboveMaxLength            ViolationCode = "AboveMaxLength"
	CodeBelowMin                  ViolationCode = "BelowMin"
	CodeAboveMax                  ViolationCode = "AboveMax"
	CodePatternMismatch           ViolationCode = "PatternMismatch"
	CodeInvalidFieldConfiguration ViolationCode = "InvalidFieldConfiguration"
)

type Violation struct {
	Code    ViolationCode
	Message string
}

// Result is the outcome of validating one raw value against one field
// definition. Rejection is an expected outcome, not an error: callers decide
// how to surface the violation list.
type Result struct {
	Normalized string
	Violations []Violation
}

func (r Result) Accepted() bool {
	return len(r.Violations) == 0
}

func (r Result) HasCode(code ViolationCode) bool {
	for _, v := range r.Violations {
		if v.Code == code {
			return true
		}
	}
	return false
}

// ConfigurationError reports whether the rejection is attributable to the
// field definition itself rather than the submitted value.
func (r Result) ConfigurationError() bool {
	return r.HasCode(CodeInvalidFieldConfiguration)
}

func accept(normalized string) Result {
	return Result{Normalized: normalized}
}

func reject(violations ...Violation) Result {
	return Result{Violations: violations}
}
