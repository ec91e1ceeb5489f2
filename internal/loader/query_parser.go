package loader

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
)

/*
This is a parser for a simple record filter language with the following grammar:

Query       := Expr
Expr        := OrExpr ( "OR" OrExpr )*
OrExpr      := AndExpr ( "AND" AndExpr )*
AndExpr     := Condition | "NOT" Condition
Condition   := Filter | "(" Expr ")"
Filter      := Field Op Value
Field       := "COUNT" <path> | <path>
Path        := <identifier> ( "." <identifier> )*
Op          := "CONTAINS" | "<" | ">" | "="
Value       := <string> | <int>

Fields are status, text, label, id and metadata.<key>.
*/

var ErrInvalidQuery = errors.New("invalid query")

var (
	parser = participle.MustBuild[QueryExpr](
		participle.Unquote("String"),
		participle.Union[Value](StringValue{}, IntValue{}),
	)
)

func ParseQuery(query string) (Filter, error) {
	q, err := parser.ParseString("", query)
	if err != nil {
		return nil, fmt.Errorf("%w: error parsing '%s': %w", ErrInvalidQuery, query, err)
	}

	filter, err := q.ToFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: error converting '%s' to filter: %w", ErrInvalidQuery, query, err)
	}

	return filter, nil
}

type QueryExpr struct {
	Expr *Expr `parser:"@@"`
}

func (q *QueryExpr) ToFilter() (Filter, error) {
	return q.Expr.ToFilter()
}

type Expr struct {
	Ors []*OrExpr `parser:"@@ ( \"OR\" @@ )*"`
}

func (e *Expr) ToFilter() (Filter, error) {
	if len(e.Ors) == 0 {
		return nil, fmt.Errorf("empty OR expression")
	}

	if len(e.Ors) == 1 {
		return e.Ors[0].ToFilter()
	}

	var filters []Filter
	for _, cond := range e.Ors {
		f, err := cond.ToFilter()
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	return &OrFilter{filters: filters}, nil
}

type OrExpr struct {
	Ands []*Condition `parser:"@@ ( \"AND\" @@ )*"`
}

func (o *OrExpr) ToFilter() (Filter, error) {
	if len(o.Ands) == 0 {
		return nil, fmt.Errorf("empty AND expression")
	}

	if len(o.Ands) == 1 {
		return o.Ands[0].ToFilter()
	}

	var filters []Filter
	for _, cond := range o.Ands {
		f, err := cond.ToFilter()
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	return &AndFilter{filters: filters}, nil
}

type Condition struct {
	Not     bool        `parser:"@\"NOT\"?"`
	Filter  *FilterExpr `parser:" @@"`
	SubExpr *Expr       `parser:"| \"(\" @@ \")\" "`
}

func (c *Condition) ToFilter() (Filter, error) {
	var filter Filter
	var err error
	if c.Filter != nil {
		filter, err = c.Filter.ToFilter()
	} else if c.SubExpr != nil {
		filter, err = c.SubExpr.ToFilter()
	}

	if err != nil {
		return nil, err
	}

	if c.Not {
		filter = &NotFilter{filter: filter}
	}

	return filter, nil
}

type FilterExpr struct {
	Field Field  `parser:" @@"`
	Op    string `parser:"@(\"CONTAINS\" | \"<\" | \">\" | \"=\" )"`
	Value Value  `parser:"@@"`
}

func (f *FilterExpr) ToFilter() (Filter, error) {
	field := f.Field.Name()

	if f.Field.Count {
		i, ok := f.Value.(IntValue)
		if !ok {
			return nil, fmt.Errorf("COUNT expr requires an int value to compare to")
		}

		switch f.Op {
		case "<":
			return &CountFilter{field: field, min: -1, max: i.Value}, nil
		case ">":
			return &CountFilter{field: field, min: i.Value, max: math.MaxInt}, nil
		case "=":
			return &CountFilter{field: field, min: i.Value - 1, max: i.Value + 1}, nil
		default:
			return nil, fmt.Errorf("invalid operator %s used with COUNT", f.Op)
		}
	}

	s, ok := f.Value.(StringValue)
	if !ok {
		return nil, fmt.Errorf("if not using COUNT operator then the value to compare to must be a string")
	}

	switch f.Op {
	case "CONTAINS":
		return &SubstringFilter{field: field, substr: s.Value}, nil
	case "<":
		return &StringLtFilter{field: field, value: s.Value}, nil
	case ">":
		return &StringGtFilter{field: field, value: s.Value}, nil
	case "=":
		return &StringEqFilter{field: field, value: s.Value}, nil
	default:
		return nil, fmt.Errorf("invalid operator %s used with string value", f.Op)
	}
}

type Field struct {
	Count bool     `parser:"@\"COUNT\"?"`
	Path  []string `parser:"@Ident ( \".\" @Ident )*"`
}

func (f *Field) Name() string {
	return strings.Join(f.Path, ".")
}

type Value interface{ value() }

type StringValue struct {
	Value string `parser:"@String"`
}

func (s StringValue) value() {}

type IntValue struct {
	Value int `parser:"@Int"`
}

func (i IntValue) value() {}
