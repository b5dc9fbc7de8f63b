package atlas

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is the attribute set of one descriptor element, e.g. a
// <SubTexture>. Lookups are by attribute name; absence is distinct from an
// empty or zero value.
type Record struct {
	attrs map[string]string
}

// NewRecord copies attrs into a read-only Record.
func NewRecord(attrs map[string]string) Record {
	r := Record{attrs: make(map[string]string, len(attrs))}
	for k, v := range attrs {
		r.attrs[k] = v
	}
	return r
}

// Lookup returns the raw attribute value and whether it is present.
func (r Record) Lookup(key string) (string, bool) {
	v, ok := r.attrs[key]
	return v, ok
}

// Has reports whether the attribute is present.
func (r Record) Has(key string) bool {
	_, ok := r.attrs[key]
	return ok
}

// Get returns the attribute value, or def when absent.
func (r Record) Get(key, def string) string {
	if v, ok := r.attrs[key]; ok {
		return v
	}
	return def
}

// Float returns the attribute parsed as a decimal number, or def when the
// attribute is absent.
func (r Record) Float(key string, def float64) (float64, error) {
	raw, ok := r.attrs[key]
	if !ok {
		return def, nil
	}
	v, err := parseDecimal(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s=%q", ErrMalformedDescriptor, key, raw)
	}
	return v, nil
}

// OptionalFloat returns nil when the attribute is absent and a pointer to
// the parsed value otherwise.
func (r Record) OptionalFloat(key string) (*float64, error) {
	if !r.Has(key) {
		return nil, nil
	}
	v, err := r.Float(key, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseDecimal parses a plain decimal literal ("12", "-3.5", "1e3").
// The period is the only decimal separator whatever the host locale;
// hex floats and non-finite values are rejected.
func parseDecimal(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	if strings.ContainsAny(s, "xX_") {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
