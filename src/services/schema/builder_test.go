package schema

import (
	"testing"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, raw string) ([]models.FieldSpec, error) {
	t.Helper()
	return Build([]byte(raw), DefaultOptions())
}

func names(fields []models.FieldSpec) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func TestBuild(t *testing.T) {
	suite := testutil.NewSuite("Schema Builder")
	defer suite.Summary(t)

	suite.Run(t, "SortsByOrderStable", func(t *testing.T) {
		fields, err := build(t, `[
			{"label":"C","name":"c","type":"text","order":2},
			{"label":"A","name":"a","type":"text","order":0},
			{"label":"B","name":"b","type":"text"}
		]`)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, names(fields))
	})

	suite.Run(t, "NamesFromLabelWhenMissingOrInvalid", func(t *testing.T) {
		fields, err := build(t, `[
			{"label":"First Name","type":"text"},
			{"label":"Zip Code","name":"1zip","type":"text"},
			{"label":"Whatever","name":"Last_Name","type":"text"}
		]`)
		require.NoError(t, err)
		assert.Equal(t, []string{"first_name", "zip_code", "last_name"}, names(fields))
	})

	suite.Run(t, "ValidSuppliedNamesKeepUnderscoreRuns", func(t *testing.T) {
		fields, err := build(t, `[
			{"label":"First","name":"first__name","type":"text","order":0},
			{"label":"AB","name":"a__b","type":"text","order":1},
			{"label":"AB single","name":"a_b","type":"text","order":2}
		]`)
		require.NoError(t, err)
		assert.Equal(t, []string{"first__name", "a__b", "a_b"}, names(fields))
	})

	suite.Run(t, "CoercesLooseShapes", func(t *testing.T) {
		fields, err := build(t, `[
			{"label":"Q","name":"q","type":"select","options":"nope","conditionalFields":[],"validation":"x"}
		]`)
		require.NoError(t, err)
		require.Len(t, fields, 1)
		f := fields[0]
		assert.NotNil(t, f.Options)
		assert.Empty(t, f.Options)
		assert.NotNil(t, f.ConditionalFields)
		assert.Empty(t, f.ConditionalFields)
		assert.Equal(t, models.Validation{}, f.Validation)
		assert.False(t, f.Required)
		assert.Equal(t, 0, f.Order)
	})

	suite.Run(t, "ParsesOptionsAndValidation", func(t *testing.T) {
		fields, err := build(t, `[
			{"label":"Age","name":"age","type":"number","validation":{"min":"18","max":100}},
			{"label":"Size","name":"size","type":"radio","options":["S",{"value":"M","label":"Medium"},3]}
		]`)
		require.NoError(t, err)
		require.NotNil(t, fields[0].Validation.Min)
		assert.Equal(t, 18.0, *fields[0].Validation.Min)
		assert.Equal(t, 100.0, *fields[0].Validation.Max)

		opts := fields[1].Options
		require.Len(t, opts, 3)
		assert.Equal(t, "S", opts[0].Value())
		assert.False(t, opts[0].IsLabeled())
		assert.Equal(t, "M", opts[1].Value())
		assert.Equal(t, "Medium", opts[1].Label())
		assert.Equal(t, 3.0, opts[2].Value())
	})

	suite.Run(t, "BuildsConditionalBranches", func(t *testing.T) {
		fields, err := build(t, `[
			{"label":"Country","name":"country","type":"select","options":["USA","Other"],
			 "conditionalFields":{"Other":[
				{"label":"Other Name","type":"text","required":true,"order":1},
				{"label":"Reason","name":"reason","type":"textarea","order":0}
			 ],"USA":"ignored"}}
		]`)
		require.NoError(t, err)
		branches := fields[0].ConditionalFields
		assert.Len(t, branches, 1)
		assert.Equal(t, []string{"reason", "other_name"}, names(branches["Other"]))
		assert.True(t, branches["Other"][1].Required)
	})

	suite.Run(t, "LabelIsTrimmedAndCleaned", func(t *testing.T) {
		opts := DefaultOptions()
		opts.CleanText = func(s string) string { return s + " " }
		fields, err := Build([]byte(`[{"label":"  Name ","type":"text"}]`), opts)
		require.NoError(t, err)
		assert.Equal(t, "Name", fields[0].Label)
	})
}

func TestBuildRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		path string
	}{
		{"NotAnArray", `{"label":"x"}`, "fields"},
		{"Null", `null`, "fields"},
		{"FieldNotObject", `["x"]`, "fields[0]"},
		{"MissingLabel", `[{"name":"a","type":"text"}]`, "fields[0].label"},
		{"BlankLabel", `[{"label":"   ","type":"text"}]`, "fields[0].label"},
		{"UnknownType", `[{"label":"A","type":"color"}]`, "fields[0].type"},
		{"MissingType", `[{"label":"A"}]`, "fields[0].type"},
		{"RequiredNotBool", `[{"label":"A","type":"text","required":"yes"}]`, "fields[0].required"},
		{"NegativeOrder", `[{"label":"A","type":"text","order":-1}]`, "fields[0].order"},
		{"FractionalOrder", `[{"label":"A","type":"text","order":1.5}]`, "fields[0].order"},
		{"BadMin", `[{"label":"A","type":"number","validation":{"min":"abc"}}]`, "fields[0].validation.min"},
		{"BadRegexType", `[{"label":"A","type":"text","validation":{"regex":5}}]`, "fields[0].validation.regex"},
		{"BrokenRegex", `[{"label":"A","type":"text","validation":{"regex":"([a-z"}}]`, "fields[0].validation.regex"},
		{"LookaheadRegex", `[{"label":"A","type":"text","validation":{"regex":"^(?=.*\\d).+$"}}]`, "fields[0].validation.regex"},
		{"BackreferenceRegex", `[{"label":"A","type":"text","validation":{"regex":"(a)\\1"}}]`, "fields[0].validation.regex"},
		{"BadOption", `[{"label":"A","type":"radio","options":[["x"]]}]`, "fields[0].options[0]"},
		{"DuplicateTopLevel", `[{"label":"A","name":"a","type":"text"},{"label":"B","name":"a","type":"text"}]`, "fields"},
		{"DuplicateAfterNormalize", `[{"label":"First Name","type":"text"},{"label":"first-name","type":"text"}]`, "fields"},
		{"ConditionalOnText", `[{"label":"A","type":"text","conditionalFields":{"x":[{"label":"B","type":"text"}]}}]`, `fields[0].conditionalFields["x"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := build(t, tc.raw)
			require.Error(t, err)
			assert.True(t, IsSchemaError(err))
			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tc.path, se.Path)
		})
	}
}

func TestBuildRejectsDuplicateNestedNames(t *testing.T) {
	_, err := build(t, `[
		{"label":"Pick","name":"pick","type":"radio","options":["a"],
		 "conditionalFields":{"a":[
			{"label":"X","name":"x","type":"text"},
			{"label":"Y","name":"x","type":"text"}
		 ]}}
	]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `conditionalFields["a"]`)
	assert.Contains(t, err.Error(), `duplicate field name "x"`)
}

func TestBuildNestingDepth(t *testing.T) {
	raw := []byte(`[
		{"label":"L1","name":"l1","type":"select","options":["a"],
		 "conditionalFields":{"a":[
			{"label":"L2","name":"l2","type":"radio","options":["b"],
			 "conditionalFields":{"b":[{"label":"L3","name":"l3","type":"text"}]}}
		 ]}}
	]`)

	_, err := Build(raw, DefaultOptions())
	require.Error(t, err)
	assert.True(t, IsSchemaError(err))
	assert.Contains(t, err.Error(), "1 level(s)")

	fields, err := Build(raw, Options{MaxDepth: 2})
	require.NoError(t, err)
	assert.Equal(t, "l3", fields[0].ConditionalFields["a"][0].ConditionalFields["b"][0].Name)
}

func TestBuildAllowsEmptyBranchAtMaxDepth(t *testing.T) {
	fields, err := build(t, `[
		{"label":"L1","name":"l1","type":"select","options":["a"],
		 "conditionalFields":{"a":[
			{"label":"L2","name":"l2","type":"radio","options":["b"],"conditionalFields":{"b":[]}}
		 ]}}
	]`)
	require.NoError(t, err)
	assert.Empty(t, fields[0].ConditionalFields["a"][0].ConditionalFields["b"])
}
