// Package validation decides whether a raw string value satisfies a field
// definition's declared type and custom rules. Values are stored untyped, so
// this package is the single source of truth for "is this value legal": it
// runs at every write boundary and is a pure function of the definition and
// the candidate value.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"staybook-server/internal/infra/utils"
	"staybook-server/internal/shared_kernel/domain"
)

// dateLayouts are the accepted ISO-8601-compatible shapes, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var booleanLiterals = map[string]struct{}{
	"true":  {},
	"false": {},
	"1":     {},
	"0":     {},
}

// Validate checks raw against the definition. The algorithm short-circuits
// between failure classes (presence, then kind conformance, then custom
// rules) but accumulates every violation inside a class so the caller gets
// the complete picture in one pass.
func Validate(def domain.FieldDefinition, raw string) Result {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		if def.IsRequired {
			return reject(requiredMissing(def))
		}
		return accept("")
	}

	kind := def.Kind()

	if kind.RequiresOptions() && len(def.Options) == 0 {
		return reject(Violation{
			Code:    CodeInvalidFieldConfiguration,
			Message: fmt.Sprintf("field %q is a %s field but declares no options", def.FieldName, kind),
		})
	}

	normalized, kindViolations := checkKind(def, kind, trimmed)
	if len(kindViolations) > 0 {
		return reject(kindViolations...)
	}

	// multi_select input like ",," trims to nothing: no selection was made.
	if kind == domain.KindMultiSelect && normalized == "" {
		if def.IsRequired {
			return reject(requiredMissing(def))
		}
		return accept("")
	}

	violations := checkRules(def.CustomRules, normalized)
	if len(violations) > 0 {
		return reject(violations...)
	}

	return accept(normalized)
}

func requiredMissing(def domain.FieldDefinition) Violation {
	return Violation{
		Code:    CodeRequiredFieldMissing,
		Message: fmt.Sprintf("field %q is required", def.FieldName),
	}
}

func invalidFormat(kind domain.FieldKind, message string) Violation {
	return Violation{
		Code:    CodeInvalidFormatForType,
		Message: fmt.Sprintf("not a valid %s value: %s", kind, message),
	}
}

// checkKind verifies the value conforms to the primitive kind and returns
// the normalized value. Custom rules are only meaningful once the format is
// valid, so any violation here stops rule evaluation.
func checkKind(def domain.FieldDefinition, kind domain.FieldKind, value string) (string, []Violation) {
	switch kind {
	case domain.KindNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return "", []Violation{invalidFormat(kind, "must parse as a decimal number")}
		}

	case domain.KindBoolean:
		if _, ok := booleanLiterals[strings.ToLower(value)]; !ok {
			return "", []Violation{invalidFormat(kind, "must be one of true, false, 1, 0")}
		}

	case domain.KindDate:
		if !parsesAsDate(value) {
			return "", []Violation{invalidFormat(kind, "must be an ISO-8601 date or timestamp")}
		}

	case domain.KindEmail:
		if !utils.IsValidEmail(value) {
			return "", []Violation{invalidFormat(kind, "must be a single valid email address")}
		}

	case domain.KindURL:
		if !parsesAsAbsoluteURL(value) {
			return "", []Violation{invalidFormat(kind, "must be an absolute URL")}
		}

	case domain.KindPhone:
		if !looksLikePhone(value) {
			return "", []Violation{invalidFormat(kind, "must contain 8 to 15 digits")}
		}

	case domain.KindSelect:
		if !def.Options.HasKey(value) {
			return "", []Violation{{
				Code:    CodeInvalidSelectOption,
				Message: fmt.Sprintf("%q is not an option of field %q", value, def.FieldName),
			}}
		}

	case domain.KindMultiSelect:
		return checkMultiSelect(def, value)
	}

	// text, textarea, file and unknown kinds take free text.
	return value, nil
}

// checkMultiSelect validates every comma-separated token. Blank tokens are
// ignored; invalid tokens are all reported, not just the first.
func checkMultiSelect(def domain.FieldDefinition, value string) (string, []Violation) {
	var violations []Violation
	tokens := make([]string, 0)
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
		if !def.Options.HasKey(token) {
			violations = append(violations, Violation{
				Code:    CodeInvalidSelectOption,
				Message: fmt.Sprintf("%q is not an option of field %q", token, def.FieldName),
			})
		}
	}

	if len(violations) > 0 {
		return "", violations
	}
	if len(tokens) == 0 {
		return "", nil
	}
	return value, nil
}

// checkRules evaluates every configured rule against a kind-conforming
// value. Rules are never short-circuited: the caller receives the complete
// violation set in one pass.
func checkRules(rules domain.RuleSet, value string) []Violation {
	var violations []Violation
	length := len([]rune(value))

	if rules.MinLength != nil && length < *rules.MinLength {
		violations = append(violations, Violation{
			Code:    CodeBelowMinLength,
			Message: fmt.Sprintf("length %d is below the minimum of %d", length, *rules.MinLength),
		})
	}

	if rules.MaxLength != nil && length > *rules.MaxLength {
		violations = append(violations, Violation{
			Code:    CodeAboveMaxLength,
			Message: fmt.Sprintf("length %d is above the maximum of %d", length, *rules.MaxLength),
		})
	}

	// min/max are evaluated generically against anything that parses as a
	// decimal; for non-numeric values the rule is skipped.
	if rules.Min != nil || rules.Max != nil {
		if number, err := strconv.ParseFloat(value, 64); err == nil {
			if rules.Min != nil && number < *rules.Min {
				violations = append(violations, Violation{
					Code:    CodeBelowMin,
					Message: fmt.Sprintf("%v is below the minimum of %v", number, *rules.Min),
				})
			}
			if rules.Max != nil && number > *rules.Max {
				violations = append(violations, Violation{
					Code:    CodeAboveMax,
					Message: fmt.Sprintf("%v is above the maximum of %v", number, *rules.Max),
				})
			}
		}
	}

	if rules.Pattern != nil {
		re, err := regexp.Compile(*rules.Pattern)
		if err != nil {
			violations = append(violations, Violation{
				Code:    CodeInvalidFieldConfiguration,
				Message: fmt.Sprintf("pattern %q does not compile: %v", *rules.Pattern, err),
			})
		} else if !re.MatchString(value) {
			violations = append(violations, Violation{
				Code:    CodePatternMismatch,
				Message: fmt.Sprintf("value does not match pattern %q", *rules.Pattern),
			})
		}
	}

	return violations
}

func parsesAsDate(value string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}

func parsesAsAbsoluteURL(value string) bool {
	parsed, err := url.Parse(value)
	return err == nil && parsed.IsAbs() && parsed.Host != ""
}

func looksLikePhone(value string) bool {
	var stripped strings.Builder
	for _, r := range value {
		if r == '+' || (r >= '0' && r <= '9') {
			stripped.WriteRune(r)
		}
	}
	length := stripped.Len()
	return length >= 8 && length <= 15
}
