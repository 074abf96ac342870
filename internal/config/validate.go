package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	// Field is the dotted key of the offending value, e.g. "cucumber_options.snippets".
	Field string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	case e.Field != "":
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
}

// validate is shared; validator caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldKey)
	return v
}

// fieldKey names a struct field by the key it is read from: its koanf tag, else
// its yaml tag, else the Go name.
func fieldKey(f reflect.StructField) string {
	for _, tag := range []string{"koanf", "yaml"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// ValidateYAMLSyntax checks that the file at filePath parses as YAML. An empty or
// missing file passes; callers decide whether absence is an error.
func ValidateYAMLSyntax(filePath string) error {
	data, err := os.ReadFile(filePath)
	switch {
	case os.IsNotExist(err):
		return nil
	case os.IsPermission(err):
		return &ValidationError{FilePath: filePath, Message: "permission denied"}
	case err != nil:
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			return &ValidationError{FilePath: filePath, Message: strings.Join(typeError.Errors, "; ")}
		}
		line, column := extractLineColumn(err.Error())
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  cleanYAMLError(err.Error()),
		}
	}
	return nil
}

// ValidateStruct validates v against its `validate` struct tags. Every violation
// becomes one ValidationError; several are joined.
func ValidateStruct(v interface{}, filePath string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{FilePath: filePath, Message: err.Error()}
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &ValidationError{
			FilePath: filePath,
			Field:    fieldPath(fe),
			Message:  formatValidationError(fe),
		})
	}
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

// extractLineColumn pulls the position out of a yaml.v3 message such as
// "yaml: line 5: could not find expected ':'". Returns 0, 0 if there is none.
func extractLineColumn(errMsg string) (line, column int) {
	var l, c int
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError removes the "yaml: line X:" prefix.
func cleanYAMLError(errMsg string) string {
	if !strings.HasPrefix(errMsg, "yaml:") {
		return errMsg
	}
	if idx := strings.LastIndex(errMsg, ": "); idx > 0 {
		return errMsg[idx+2:]
	}
	return errMsg
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("must be a URL, got %q", fe.Value())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

// toSnakeCase converts a camelCase or CamelCase name to snake_case. Acronym runs
// stay together: "APIKey" becomes "api_key".
func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
