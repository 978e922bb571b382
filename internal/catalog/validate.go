package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports a single bad or missing argument. The message
// always names the field; for coercion failures it also quotes the raw
// value verbatim so callers can see exactly what was rejected.
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string { return e.msg }

func missingField(name string) *ValidationError {
	return &ValidationError{Field: name, msg: fmt.Sprintf("missing required field %q", name)}
}

func badValue(name string, raw any, want string) *ValidationError {
	return &ValidationError{
		Field: name,
		msg:   fmt.Sprintf("invalid value %q for field %q: expected %s", fmt.Sprint(raw), name, want),
	}
}

// Validate checks raw arguments against the tool's parameter specs and
// returns the coerced argument map. Required parameters must be present and
// non-empty; optional absent parameters receive their declared default;
// unknown extra fields are ignored. No cross-field checks are performed.
func Validate(def ToolDefinition, raw map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(def.Params))
	for _, p := range def.Params {
		value, present := raw[p.Name]
		if !present || value == nil {
			if p.Required {
				return nil, missingField(p.Name)
			}
			out[p.Name] = p.DefaultValue()
			continue
		}
		coerced, err := coerce(p, value)
		if err != nil {
			return nil, err
		}
		if p.Required {
			if s, ok := coerced.(string); ok && strings.TrimSpace(s) == "" {
				return nil, missingField(p.Name)
			}
		}
		out[p.Name] = coerced
	}
	return out, nil
}

// DefaultValue returns the declared default, or the zero value of the
// parameter's type when none is declared.
func (p ParameterSpec) DefaultValue() any {
	if p.Default != nil {
		return p.Default
	}
	switch p.Type {
	case TypeInteger:
		return 0
	case TypeBoolean:
		return false
	default:
		return ""
	}
}

func coerce(p ParameterSpec, value any) (any, error) {
	switch p.Type {
	case TypeString:
		return coerceString(p, value)
	case TypeInteger:
		return coerceInteger(p, value)
	case TypeBoolean:
		return coerceBoolean(p, value)
	case TypeEnum:
		return coerceEnum(p, value)
	default:
		return nil, badValue(p.Name, value, "a known type")
	}
}

func coerceString(p ParameterSpec, value any) (string, error) {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case float64:
		// JSON numbers for string-typed fields (e.g. numeric IDs) are
		// tolerated and rendered in their shortest decimal form.
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", badValue(p.Name, value, "a string")
	}
}

func coerceInteger(p ParameterSpec, value any) (int, error) {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case float64:
		if v != math.Trunc(v) {
			return 0, badValue(p.Name, v, "an integer")
		}
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, badValue(p.Name, v, "an integer")
		}
		n = parsed
	default:
		return 0, badValue(p.Name, value, "an integer")
	}
	if p.Min != nil && n < *p.Min {
		return 0, rangeError(p, n)
	}
	if p.Max != nil && n > *p.Max {
		return 0, rangeError(p, n)
	}
	return n, nil
}

func rangeError(p ParameterSpec, n int) *ValidationError {
	lo, hi := "-inf", "+inf"
	if p.Min != nil {
		lo = strconv.Itoa(*p.Min)
	}
	if p.Max != nil {
		hi = strconv.Itoa(*p.Max)
	}
	return &ValidationError{
		Field: p.Name,
		msg:   fmt.Sprintf("field %q: value %d out of range [%s, %s]", p.Name, n, lo, hi),
	}
}

func coerceBoolean(p ParameterSpec, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, badValue(p.Name, v, "a boolean")
		}
		return parsed, nil
	default:
		return false, badValue(p.Name, value, "a boolean")
	}
}

func coerceEnum(p ParameterSpec, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", badValue(p.Name, value, "one of "+strings.Join(p.Enum, ", "))
	}
	s = strings.TrimSpace(s)
	if s == "" && !p.Required {
		// Optional enums may be passed empty to mean "unset".
		return "", nil
	}
	for _, allowed := range p.Enum {
		if s == allowed {
			return s, nil
		}
	}
	return "", badValue(p.Name, s, "one of "+strings.Join(p.Enum, ", "))
}
