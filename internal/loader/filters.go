package loader

import (
	"fmt"
	"strings"

	"argilla-trainer/internal/records"
)

type Filter interface {
	Matches(record records.Record) bool
}

// fieldValues returns the values of a record field as strings. Multi valued
// fields (label) yield one value per label.
func fieldValues(record records.Record, field string) []string {
	switch field {
	case "status":
		return []string{string(record.RecordStatus())}
	case "text":
		return []string{record.RecordText()}
	case "label":
		return record.Labels()
	case "id":
		return []string{record.RecordId().String()}
	}

	if key, ok := strings.CutPrefix(field, "metadata."); ok {
		v, ok := record.RecordMetadata()[key]
		if !ok || v == nil {
			return nil
		}
		return []string{fmt.Sprint(v)}
	}

	return nil
}

type AndFilter struct {
	filters []Filter
}

func (f *AndFilter) Matches(record records.Record) bool {
	for _, filter := range f.filters {
		if !filter.Matches(record) {
			return false
		}
	}
	return true
}

type OrFilter struct {
	filters []Filter
}

func (f *OrFilter) Matches(record records.Record) bool {
	for _, filter := range f.filters {
		if filter.Matches(record) {
			return true
		}
	}
	return false
}

type NotFilter struct {
	filter Filter
}

func (f *NotFilter) Matches(record records.Record) bool {
	return !f.filter.Matches(record)
}

type CountFilter struct {
	field string
	min   int
	max   int
}

func (f *CountFilter) Matches(record records.Record) bool {
	count := len(fieldValues(record, f.field))
	return f.min < count && count < f.max
}

type SubstringFilter struct {
	field  string
	substr string
}

func (f *SubstringFilter) Matches(record records.Record) bool {
	for _, v := range fieldValues(record, f.field) {
		if strings.Contains(v, f.substr) {
			return true
		}
	}
	return false
}

type StringEqFilter struct {
	field string
	value string
}

func (f *StringEqFilter) Matches(record records.Record) bool {
	for _, v := range fieldValues(record, f.field) {
		if v == f.value {
			return true
		}
	}
	return false
}

type StringLtFilter struct {
	field string
	value string
}

func (f *StringLtFilter) Matches(record records.Record) bool {
	for _, v := range fieldValues(record, f.field) {
		if v < f.value {
			return true
		}
	}
	return false
}

type StringGtFilter struct {
	field string
	value string
}

func (f *StringGtFilter) Matches(record records.Record) bool {
	for _, v := range fieldValues(record, f.field) {
		if v > f.value {
			return true
		}
	}
	return false
}
