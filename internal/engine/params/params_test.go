package params

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnum string

func (e testEnum) Tag() string { return string(e) }

var testParts = NewTagSet("id", "snippet", "status")

func TestNormalizeIDList(t *testing.T) {
	tests := []struct {
		name string
		in   StringOrList
		want []string
	}{
		{"delimited string", String("a, b ,,c"), []string{"a", "b", "c"}},
		{"list", List("a", " b "), []string{"a", "b"}},
		{"list with delimited element", List("a,b", "c"), []string{"a", "b", "c"}},
		{"duplicates keep first", String("b,a,b"), []string{"b", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeIDList(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeIDList_Empty(t *testing.T) {
	for name, in := range map[string]StringOrList{
		"empty string": String(""),
		"only commas":  String(" , ,"),
		"empty list":   List(),
		"absent":       {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NormalizeIDList(in)
			require.ErrorIs(t, err, ErrEmptyIDList)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNormalizePartList(t *testing.T) {
	fromString, err := NormalizePartList(String("snippet, status"), testParts)
	require.NoError(t, err)
	fromList, err := NormalizePartList(List("snippet", "status"), testParts)
	require.NoError(t, err)

	assert.Equal(t, []string{"snippet", "status"}, fromString)
	assert.Equal(t, fromString, fromList)

	again, err := NormalizePartList(List(fromString...), testParts)
	require.NoError(t, err)
	assert.Equal(t, fromString, again, "normalization must be idempotent")
}

func TestNormalizePartList_Invalid(t *testing.T) {
	_, err := NormalizePartList(String("snippet,bogus,statistics"), testParts)
	require.ErrorIs(t, err, ErrValidation)

	var tagErr *InvalidTagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "part", tagErr.Field)
	assert.Equal(t, []string{"bogus", "statistics"}, tagErr.Tokens)
	assert.Equal(t, testParts, tagErr.Valid)
	assert.Contains(t, err.Error(), `"bogus"`)
}

func TestNormalizePartList_Missing(t *testing.T) {
	for _, in := range []StringOrList{{}, String(""), List()} {
		_, err := NormalizePartList(in, testParts)
		assert.ErrorIs(t, err, ErrMissingPart)
	}
}

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "@foo", NormalizeHandle("foo"))
	assert.Equal(t, "@foo", NormalizeHandle("@foo"))
	assert.Equal(t, "@foo", NormalizeHandle(NormalizeHandle("foo")))
}

func TestValidateExactlyOne(t *testing.T) {
	require.NoError(t, ValidateExactlyOne(
		Candidate{Name: "id", Set: true},
		Candidate{Name: "mine"},
	))

	tests := []struct {
		name      string
		set       []bool
		specified []string
	}{
		{"none", []bool{false, false, false}, nil},
		{"two", []bool{true, false, true}, []string{"forHandle", "mine"}},
		{"all", []bool{true, true, true}, []string{"forHandle", "id", "mine"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := []string{"forHandle", "id", "mine"}
			var cands []Candidate
			for i, n := range names {
				cands = append(cands, Candidate{Name: n, Set: tt.set[i]})
			}
			err := ValidateExactlyOne(cands...)
			require.ErrorIs(t, err, ErrValidation)

			var fe *FilterCountError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.specified, fe.Specified)
			assert.Equal(t, names, fe.Valid)
		})
	}
}

func TestValidateRange(t *testing.T) {
	require.NoError(t, ValidateRange("maxResults", 0, 0, 50))
	require.NoError(t, ValidateRange("maxResults", 50, 0, 50))

	err := ValidateRange("maxResults", 75, 0, 50)
	var re *RangeError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, int64(75), re.Value)
	assert.EqualError(t, err, "maxResults must be between 0 and 50, got 75")
}

func TestEncode(t *testing.T) {
	list := []string{"snippet", "status"}

	assert.Equal(t, "snippet,status", Encode(list, ModeAPI))
	assert.Equal(t, []string{"snippet", "status"}, Encode(list, ModeSchema))
	assert.Equal(t, "mostPopular", Encode(testEnum("mostPopular"), ModeAPI))
	assert.Equal(t, "mostPopular", Encode(testEnum("mostPopular"), ModeSchema))
	assert.Equal(t, true, Encode(true, ModeAPI))
	assert.Equal(t, int64(5), Encode(int64(5), ModeSchema))

	// schema projections must not alias the canonical list
	out := Encode(list, ModeSchema).([]string)
	out[0] = "changed"
	assert.Equal(t, "snippet", list[0])
}

func TestParamsValues(t *testing.T) {
	p := Params{
		"part":       []string{"id", "snippet"},
		"mine":       true,
		"maxResults": int64(50),
		"chart":      testEnum("mostPopular"),
		"hl":         "en",
	}
	q := p.Values()
	assert.Equal(t, "id,snippet", q.Get("part"))
	assert.Equal(t, "true", q.Get("mine"))
	assert.Equal(t, "50", q.Get("maxResults"))
	assert.Equal(t, "mostPopular", q.Get("chart"))
	assert.Equal(t, "en", q.Get("hl"))
	assert.Equal(t, []string{"chart", "hl", "maxResults", "mine", "part"}, p.Keys())
}

func TestStringOrList_JSON(t *testing.T) {
	var in struct {
		Part StringOrList `json:"part"`
		ID   StringOrList `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"part":"snippet,status","id":["a","b"]}`), &in))
	assert.Equal(t, []string{"snippet", "status"}, in.Part.Tokens())
	assert.Equal(t, []string{"a", "b"}, in.ID.Tokens())

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"part":"snippet,status","id":["a","b"]}`, string(data))

	var absent struct {
		ID StringOrList `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &absent))
	assert.True(t, absent.ID.IsZero())

	err = json.Unmarshal([]byte(`{"id":42}`), &absent)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}
