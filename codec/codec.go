// Package codec integrates country values with serialization frameworks.
//
// Country wraps country.Country and encodes as its alpha-2 code in JSON,
// YAML, text and SQL columns. The country package itself does not depend on
// any of these.
package codec

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/hightemp/iso3166/country"
	"gopkg.in/yaml.v3"
)

// Expected describes what a valid encoded value looks like.
const Expected = "valid 2 letter country code"

// InvalidValueError is returned when decoding input that is not a known code.
type InvalidValueError struct {
	Value    string
	Expected string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q, expected %s", e.Value, e.Expected)
}

func invalidValue(v string) error {
	return &InvalidValueError{Value: v, Expected: Expected}
}

// Country is a country.Country that can be (un)marshaled.
type Country country.Country

// Wrap converts a country.Country.
func Wrap(c country.Country) Country {
	return Country(c)
}

// Unwrap converts back to country.Country.
func Unwrap(c Country) country.Country {
	return country.Country(c)
}

// String returns the alpha-2 code.
func (c Country) String() string {
	return country.Country(c).String()
}

func (c Country) encode() (string, error) {
	if !country.Country(c).IsValid() {
		return "", fmt.Errorf("codec: cannot encode unknown country %d", uint16(c))
	}
	return c.String(), nil
}

func (c *Country) decode(s string) error {
	parsed, err := country.Parse(s)
	if err != nil {
		return invalidValue(s)
	}
	*c = Country(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Country) MarshalText() ([]byte, error) {
	s, err := c.encode()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Country) UnmarshalText(text []byte) error {
	return c.decode(string(text))
}

// MarshalJSON encodes the country as a JSON string.
func (c Country) MarshalJSON() ([]byte, error) {
	s, err := c.encode()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON decodes a JSON string. A JSON null leaves c unchanged.
func (c *Country) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return invalidValue(string(data))
	}
	return c.decode(s)
}

// MarshalYAML implements yaml.Marshaler.
func (c Country) MarshalYAML() (interface{}, error) {
	return c.encode()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Country) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return invalidValue(value.Value)
	}
	if value.Tag == "!!null" {
		return nil
	}
	return c.decode(value.Value)
}

// Value implements driver.Valuer.
func (c Country) Value() (driver.Value, error) {
	return c.encode()
}

// Scan implements sql.Scanner. NULL scans to country.Unspecified.
func (c *Country) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*c = Country(country.Unspecified)
		return nil
	case string:
		return c.decode(v)
	case []byte:
		return c.decode(string(v))
	default:
		return invalidValue(fmt.Sprint(src))
	}
}
