package codec

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hightemp/iso3166/country"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type record struct {
	Name    string  `json:"name" yaml:"name"`
	Country Country `json:"country" yaml:"country"`
}

func TestJSONMarshal(t *testing.T) {
	data, err := json.Marshal(Wrap(country.RU))
	require.NoError(t, err)
	assert.Equal(t, `"RU"`, string(data))

	data, err = json.Marshal(record{Name: "x", Country: Wrap(country.Unspecified)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x","country":""}`, string(data))
}

func TestJSONUnmarshal(t *testing.T) {
	var c Country
	require.NoError(t, json.Unmarshal([]byte(`"RU"`), &c))
	assert.Equal(t, country.RU, Unwrap(c))

	var r record
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","country":"PL"}`), &r))
	assert.Equal(t, country.PL, Unwrap(r.Country))

	r.Country = Wrap(country.DE)
	require.NoError(t, json.Unmarshal([]byte(`{"country":null}`), &r))
	assert.Equal(t, country.DE, Unwrap(r.Country), "null leaves value unchanged")
}

func TestJSONUnmarshalInvalid(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`"ZZ"`, "ZZ"},
		{`"ru"`, "ru"},
		{`42`, "42"},
		{`["PL"]`, `["PL"]`},
	}

	for _, tc := range tests {
		var c Country
		err := json.Unmarshal([]byte(tc.input), &c)
		require.Error(t, err, tc.input)

		var verr *InvalidValueError
		require.ErrorAs(t, err, &verr, tc.input)
		assert.Equal(t, tc.value, verr.Value)
		assert.Equal(t, "valid 2 letter country code", verr.Expected)
	}
}

func TestInvalidValueErrorMessage(t *testing.T) {
	err := &InvalidValueError{Value: "ZZ", Expected: Expected}
	assert.Equal(t, `invalid value "ZZ", expected valid 2 letter country code`, err.Error())
}

func TestMarshalUnknownCountry(t *testing.T) {
	_, err := json.Marshal(Country(999))
	assert.Error(t, err)

	_, err = Country(999).Value()
	assert.Error(t, err)
}

func TestJSONMapKeys(t *testing.T) {
	in := map[Country]int{Wrap(country.PL): 1, Wrap(country.DE): 2}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"PL":1,"DE":2}`, string(data))

	out := map[Country]int{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAML(t *testing.T) {
	data, err := yaml.Marshal(record{Name: "x", Country: Wrap(country.GB)})
	require.NoError(t, err)
	assert.Equal(t, "name: x\ncountry: GB\n", string(data))

	var r record
	require.NoError(t, yaml.Unmarshal([]byte("name: y\ncountry: TZ\n"), &r))
	assert.Equal(t, country.TZ, Unwrap(r.Country))

	require.NoError(t, yaml.Unmarshal([]byte("country: \"\"\n"), &r))
	assert.Equal(t, country.Unspecified, Unwrap(r.Country))
}

func TestYAMLInvalid(t *testing.T) {
	var r record
	err := yaml.Unmarshal([]byte("country: ZZ\n"), &r)

	var verr *InvalidValueError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "ZZ", verr.Value)

	err = yaml.Unmarshal([]byte("country: [PL]\n"), &r)
	require.ErrorAs(t, err, &verr)
}

func TestScan(t *testing.T) {
	var c Country
	require.NoError(t, c.Scan("PL"))
	assert.Equal(t, country.PL, Unwrap(c))

	require.NoError(t, c.Scan([]byte("US")))
	assert.Equal(t, country.US, Unwrap(c))

	require.NoError(t, c.Scan(nil))
	assert.Equal(t, country.Unspecified, Unwrap(c))

	var verr *InvalidValueError
	require.ErrorAs(t, c.Scan("pl"), &verr)
	require.ErrorAs(t, c.Scan(int64(616)), &verr)
	assert.Equal(t, "616", verr.Value)
}

func TestSQLRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice", "FR").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT country FROM users").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"country"}).AddRow("FR"))
	mock.ExpectQuery("SELECT country FROM users").
		WithArgs("bob").
		WillReturnRows(sqlmock.NewRows([]string{"country"}).AddRow("XX"))

	_, err = db.Exec("INSERT INTO users (name, country) VALUES (?, ?)", "alice", Wrap(country.FR))
	require.NoError(t, err)

	var c Country
	require.NoError(t, db.QueryRow("SELECT country FROM users WHERE name = ?", "alice").Scan(&c))
	assert.Equal(t, country.FR, Unwrap(c))

	err = db.QueryRow("SELECT country FROM users WHERE name = ?", "bob").Scan(&c)
	require.Error(t, err)
	assert.NotErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}
