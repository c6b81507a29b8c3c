// Package query turns list-endpoint query parameters into storage predicates
// and pagination bounds. It performs no I/O; repositories apply the resulting
// scopes to their own queries.
package query

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ErrInvalidFilter is wrapped by all filter parsing failures.
var ErrInvalidFilter = errors.New("invalid filter")

// DateLayout is the calendar date format accepted by start_date/end_date.
const DateLayout = "2006-01-02"

// FilterSpec is the parsed form of a list endpoint's filter parameters.
// All present conditions are combined with AND.
type FilterSpec struct {
	StartDate *time.Time
	EndDate   *time.Time
	Name      string
	// IDSets maps a column name to the set of accepted ids for that column.
	IDSets map[string][]uint
}

// Condition is a single WHERE fragment with its arguments.
type Condition struct {
	Query string
	Args  []interface{}
}

// ParseFilterSpec builds a FilterSpec from raw query parameters. setFields
// names the id-set parameters a given endpoint accepts; each doubles as the
// column the resulting predicate filters on, so callers must only pass static
// route-declared names, never user input.
func ParseFilterSpec(values url.Values, setFields ...string) (FilterSpec, error) {
	spec := FilterSpec{Name: strings.TrimSpace(values.Get("name"))}

	if raw := values.Get("start_date"); raw != "" {
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return FilterSpec{}, fmt.Errorf("%w: start_date %q is not a valid date", ErrInvalidFilter, raw)
		}
		spec.StartDate = &t
	}
	if raw := values.Get("end_date"); raw != "" {
		t, err := time.Parse(DateLayout, raw)
		if err != nil {
			return FilterSpec{}, fmt.Errorf("%w: end_date %q is not a valid date", ErrInvalidFilter, raw)
		}
		spec.EndDate = &t
	}

	for _, field := range setFields {
		raw := values.Get(field)
		if raw == "" {
			continue
		}
		ids, err := parseIDList(raw)
		if err != nil {
			return FilterSpec{}, fmt.Errorf("%w: %s %q is not a list of ids", ErrInvalidFilter, field, raw)
		}
		if len(ids) == 0 {
			continue
		}
		if spec.IDSets == nil {
			spec.IDSets = make(map[string][]uint)
		}
		spec.IDSets[field] = ids
	}

	return spec, nil
}

// parseIDList accepts a JSON array ("[1,2]") or a comma separated list ("1,2").
func parseIDList(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var ids []uint
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, err
		}
		return ids, nil
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// Conditions returns the WHERE fragments for the spec in a deterministic
// order. An inverted date range (start after end) simply yields two fragments
// no row can satisfy.
func (f FilterSpec) Conditions() []Condition {
	var conds []Condition
	if f.StartDate != nil {
		conds = append(conds, Condition{Query: "created_at >= ?", Args: []interface{}{*f.StartDate}})
	}
	if f.EndDate != nil {
		conds = append(conds, Condition{Query: "created_at <= ?", Args: []interface{}{*f.EndDate}})
	}
	if f.Name != "" {
		conds = append(conds, Condition{Query: "LOWER(name) LIKE ?", Args: []interface{}{"%" + strings.ToLower(f.Name) + "%"}})
	}
	fields := make([]string, 0, len(f.IDSets))
	for field := range f.IDSets {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		conds = append(conds, Condition{Query: field + " IN ?", Args: []interface{}{f.IDSets[field]}})
	}
	return conds
}

// Scope applies every condition of the spec to a gorm query. Counting uses
// the same scope so that totals reflect the filtered set, not the page.
func (f FilterSpec) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, cond := range f.Conditions() {
			db = db.Where(cond.Query, cond.Args...)
		}
		return db
	}
}
