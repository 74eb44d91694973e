// Public domain.

// Package table reads protostar survey tables.
//
// A table is comma separated text beginning with a heading line.  The
// index column Name holds row names of the form <region>_<field>_<object>,
// where field and object are integers.  Value columns RA, DEC, Inc, Inc_err,
// Rmaj and Tbol0 are required.  Other columns are allowed and ignored.
//
// Empty cells and the usual missing value tokens read as NaN.  Deciding
// what to do with NaN is left to the caller.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Column headings.
const (
	ColName   = "Name"
	ColRA     = "RA"
	ColDec    = "DEC"
	ColInc    = "Inc"
	ColIncErr = "Inc_err"
	ColRmaj   = "Rmaj"
	ColTbol   = "Tbol0"
)

// Required lists the value columns that must be present, in Row field order.
var Required = []string{ColRA, ColDec, ColInc, ColIncErr, ColRmaj, ColTbol}

var (
	// ErrName is wrapped by errors for row names that do not parse.
	ErrName = errors.New("malformed row name")
	// ErrFormat is wrapped by errors for tables that cannot be read
	// as protostar tables.
	ErrFormat = errors.New("invalid table")
)

// Name is a parsed row name.
type Name struct {
	Region string
	Field  int
	Object int
}

func (n Name) String() string {
	return fmt.Sprintf("%s_%d_%d", n.Region, n.Field, n.Object)
}

// ParseName splits a row name into region label, field id and object id.
//
// There must be exactly three underscore separated parts and the last two
// must be integers.
func ParseName(s string) (Name, error) {
	parts := strings.Split(s, "_")
	if len(parts) != 3 {
		return Name{}, fmt.Errorf("%w %q: want <region>_<field>_<object>",
			ErrName, s)
	}
	f, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Name{}, fmt.Errorf("%w %q: field %q not an integer",
			ErrName, s, parts[1])
	}
	o, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Name{}, fmt.Errorf("%w %q: object %q not an integer",
			ErrName, s, parts[2])
	}
	return Name{Region: parts[0], Field: f, Object: o}, nil
}

// Row is one table row.
type Row struct {
	Key  string // row name as it appears in the table
	Name Name
	Line int // line number in the input, 1 based

	RA, Dec float64 // degrees
	Inc     float64
	IncErr  float64
	Rmaj    float64
	Tbol    float64
}

// ReadFile reads the table in file fn.  Errors from Read are prefixed with
// the file name.
func ReadFile(fn string) ([]Row, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return rows, nil
}

// Read reads a table, returning rows in input order.
//
// A table with a heading line and no rows is valid and returns no rows.
// Errors wrap ErrFormat or ErrName and report the line of the offending
// row.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	head, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: no heading line", ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	nameCol, valCols, err := columns(head)
	if err != nil {
		return nil, err
	}

	var rows []Row
	seen := map[string]int{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		line, _ := cr.FieldPos(0)
		key := strings.TrimSpace(rec[nameCol])
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: line %d: row name %q duplicates line %d",
				ErrFormat, line, key, prev)
		}
		seen[key] = line
		n, err := ParseName(key)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		var v [6]float64
		for i, c := range valCols {
			if v[i], err = parseValue(rec[c]); err != nil {
				return nil, fmt.Errorf("%w: line %d: column %s: %v",
					ErrFormat, line, Required[i], err)
			}
		}
		rows = append(rows, Row{
			Key:    key,
			Name:   n,
			Line:   line,
			RA:     v[0],
			Dec:    v[1],
			Inc:    v[2],
			IncErr: v[3],
			Rmaj:   v[4],
			Tbol:   v[5],
		})
	}
}

// columns locates the index column and the required value columns.
func columns(head []string) (nameCol int, valCols [6]int, err error) {
	at := make(map[string]int, len(head))
	for i, h := range head {
		at[strings.TrimSpace(h)] = i
	}
	var missing []string
	nameCol, ok := at[ColName]
	if !ok {
		missing = append(missing, ColName)
	}
	for i, c := range Required {
		if valCols[i], ok = at[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		err = fmt.Errorf("%w: missing column(s) %s",
			ErrFormat, strings.Join(missing, ", "))
	}
	return
}

// tokens read as missing values, in addition to an empty cell and
// anything strconv reads as NaN.
var missingTokens = map[string]bool{
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"null": true,
	"NULL": true,
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || missingTokens[s] {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q not a number", s)
	}
	return v, nil
}
