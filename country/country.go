// Package country provides the ISO 3166-1 country registry: alpha-2 codes,
// English short names and numeric codes, with conversions between them.
//
// All data is compiled in and never modified, so every function in this
// package is safe for concurrent use.
package country

import (
	"errors"
	"fmt"
	"sort"
)

// Country is an ISO 3166-1 country. Its value is the ISO 3166-1 numeric
// code; the zero value is Unspecified.
type Country uint16

// Unspecified represents "no country". It formats as the empty string.
const Unspecified Country = 0

// ErrInvalidCountryCode is matched by every error returned from Parse.
var ErrInvalidCountryCode = errors.New("invalid country code")

// ParseError is returned by Parse when the input is not an assigned code.
type ParseError struct {
	Code string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid country code %q", e.Code)
}

// Is reports whether target is ErrInvalidCountryCode.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidCountryCode
}

type entry struct {
	code    string
	country Country
	name    string
}

type alias struct {
	name    string
	country Country
}

var (
	// position of each country in codeTable
	index  = make(map[Country]int, len(codeTable))
	byName = make(map[string]Country, len(codeTable)+len(aliases))
)

func init() {
	for i, e := range codeTable {
		index[e.country] = i
		if e.country != Unspecified {
			byName[e.name] = e.country
		}
	}
	for _, a := range aliases {
		byName[a.name] = a.country
	}
}

// Parse returns the country for an alpha-2 code. Matching is exact and
// case-sensitive; the empty string parses to Unspecified.
func Parse(code string) (Country, error) {
	i := sort.Search(len(codeTable), func(i int) bool {
		return codeTable[i].code >= code
	})
	if i < len(codeTable) && codeTable[i].code == code {
		return codeTable[i].country, nil
	}
	return Unspecified, &ParseError{Code: code}
}

// MustParse is like Parse but panics if code is not valid.
func MustParse(code string) Country {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValidCode reports whether code is an assigned alpha-2 code or the empty string.
func IsValidCode(code string) bool {
	_, err := Parse(code)
	return err == nil
}

// FromName returns the country with the given English short name or one of
// its recognized aliases. Matching is exact.
func FromName(name string) (Country, bool) {
	c, ok := byName[name]
	return c, ok
}

// FromNumeric returns the country with the given ISO 3166-1 numeric code.
// Zero is not a country and is reported as not found.
func FromNumeric(n uint16) (Country, bool) {
	c := Country(n)
	if c == Unspecified || !c.IsValid() {
		return Unspecified, false
	}
	return c, true
}

// String returns the alpha-2 code, or "" for Unspecified.
func (c Country) String() string {
	i, ok := index[c]
	if !ok {
		return fmt.Sprintf("Country(%d)", uint16(c))
	}
	return codeTable[i].code
}

// Alpha2 returns the alpha-2 code. It is the same as String.
func (c Country) Alpha2() string {
	return c.String()
}

// Name returns the English short name, or "" for Unspecified.
func (c Country) Name() string {
	i, ok := index[c]
	if !ok {
		return ""
	}
	return codeTable[i].name
}

// Numeric returns the ISO 3166-1 numeric code.
func (c Country) Numeric() uint16 {
	return uint16(c)
}

// IsValid reports whether c is Unspecified or an assigned country.
func (c Country) IsValid() bool {
	_, ok := index[c]
	return ok
}

// All returns every assigned country ordered by alpha-2 code.
func All() []Country {
	result := make([]Country, 0, len(codeTable)-1)
	for _, e := range codeTable[1:] {
		result = append(result, e.country)
	}
	return result
}

// Codes returns every assigned alpha-2 code in order.
func Codes() []string {
	result := make([]string, 0, len(codeTable)-1)
	for _, e := range codeTable[1:] {
		result = append(result, e.code)
	}
	return result
}

// Count returns the number of assigned countries.
func Count() int {
	return len(codeTable) - 1
}
