package validation

import (
	"fmt"
	"testing"
	"time"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(f float64) *float64 { return &f }
func ptrI(i int) *int         { return &i }

func answers(kv ...any) []models.Answer {
	out := make([]models.Answer, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, models.Answer{Name: kv[i].(string), Value: kv[i+1]})
	}
	return out
}

func one(f models.FieldSpec, value any) Errors {
	if value == nil {
		return Validate([]models.FieldSpec{f}, nil)
	}
	return Validate([]models.FieldSpec{f}, answers(f.Name, value))
}

func TestEveryFieldTypeHasAChecker(t *testing.T) {
	for _, ft := range models.AllFieldTypes {
		_, ok := checkers[ft]
		assert.True(t, ok, "no checker for %q", ft)
	}
	assert.Len(t, checkers, len(models.AllFieldTypes))
}

func TestUnknownTypeIsConfigurationError(t *testing.T) {
	errs := one(models.FieldSpec{Label: "Odd", Name: "odd", Type: "color"}, "red")
	require.Len(t, errs, 1)
	assert.Equal(t, CodeConfiguration, errs[0].Code)
	assert.True(t, errs.Configuration())
}

func TestRequiredAndEmpty(t *testing.T) {
	suite := testutil.NewSuite("Required handling")
	defer suite.Summary(t)

	for _, ft := range models.AllFieldTypes {
		ft := ft
		f := models.FieldSpec{Label: "Thing", Name: "thing", Type: ft, Required: true,
			Options: []models.Option{models.Bare("a")}}

		suite.Run(t, "RequiredMissing/"+string(ft), func(t *testing.T) {
			for _, errs := range []Errors{one(f, nil), one(f, "")} {
				require.Len(t, errs, 1)
				assert.Equal(t, "Thing is required", errs[0].Message)
				assert.Equal(t, CodeRequired, errs[0].Code)
				assert.Equal(t, "thing", errs[0].Field)
			}
		})

		optional := f
		optional.Required = false
		suite.Run(t, "OptionalMissing/"+string(ft), func(t *testing.T) {
			assert.Empty(t, one(optional, nil))
			assert.Empty(t, one(optional, ""))
		})
	}
}

func TestExplicitNullCountsAsEmpty(t *testing.T) {
	f := models.FieldSpec{Label: "Name", Name: "name", Type: models.FieldText, Required: true}
	errs := Validate([]models.FieldSpec{f}, []models.Answer{{Name: "name", Value: nil}})
	require.Len(t, errs, 1)
	assert.Equal(t, "Name is required", errs[0].Message)
}

func TestText(t *testing.T) {
	f := models.FieldSpec{Label: "Code", Name: "code", Type: models.FieldText,
		Validation: models.Validation{MinLength: ptrI(3), MaxLength: ptrI(5), Regex: "^[A-Z]+"}}

	assert.Empty(t, one(f, "ABCD"))
	assert.Equal(t, []string{"Code must be a string"}, one(f, 42.0).Messages())
	assert.Equal(t, []string{"Code must be at least 3 characters"}, one(f, "AB").Messages())
	assert.Equal(t, []string{"Code must be at most 5 characters"}, one(f, "ABCDEF").Messages())
	assert.Equal(t, []string{"Code format is invalid"}, one(f, "abcd").Messages())
	// lengths count characters, not bytes
	assert.Empty(t, one(models.FieldSpec{Label: "T", Name: "t", Type: models.FieldTextarea,
		Validation: models.Validation{MaxLength: ptrI(3)}}, "ééé"))
}

func TestRegexIsUnanchoredAndBadPatternsFailAnswers(t *testing.T) {
	f := models.FieldSpec{Label: "Zip", Name: "zip", Type: models.FieldText,
		Validation: models.Validation{Regex: `\d{5}`}}
	assert.Empty(t, one(f, "zip 12345 ok"))

	broken := f
	broken.Validation.Regex = `([a-z`
	errs := one(broken, "abc")
	require.Len(t, errs, 1)
	assert.Equal(t, "Zip format is invalid", errs[0].Message)
	assert.Equal(t, CodePattern, errs[0].Code)
}

func TestNumberBoundaries(t *testing.T) {
	f := models.FieldSpec{Label: "Age", Name: "age", Type: models.FieldNumber, Required: true,
		Validation: models.Validation{Min: ptrF(18), Max: ptrF(100)}}

	errs := one(f, 17.0)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "at least 18")
	assert.Empty(t, one(f, 18.0))
	assert.Empty(t, one(f, 100.0))
	errs = one(f, 101.0)
	require.Len(t, errs, 1)
	assert.Equal(t, "Age must be at most 100", errs[0].Message)

	assert.Empty(t, one(f, " 42 "))
	assert.Equal(t, []string{"Age must be a valid number"}, one(f, "forty").Messages())
	assert.Equal(t, []string{"Age must be a valid number"}, one(f, true).Messages())
	assert.Equal(t, []string{"Age must be a valid number"}, one(f, []any{1.0}).Messages())

	frac := models.FieldSpec{Label: "Score", Name: "score", Type: models.FieldNumber,
		Validation: models.Validation{Min: ptrF(0.5)}}
	assert.Equal(t, []string{"Score must be at least 0.5"}, one(frac, 0.25).Messages())
}

func TestEmail(t *testing.T) {
	f := models.FieldSpec{Label: "Email", Name: "email", Type: models.FieldEmail, Required: true}
	assert.Empty(t, one(f, "john@example.com"))
	assert.Equal(t, []string{"Email must be a valid email address"}, one(f, "invalid-email").Messages())
	assert.Equal(t, []string{"Email must be a valid email address"}, one(f, 12.0).Messages())
}

func TestDate(t *testing.T) {
	f := models.FieldSpec{Label: "Birthday", Name: "birthday", Type: models.FieldDate}
	for _, ok := range []any{"2024-02-29", "2024-02-29T10:00:00Z", "2024-02-29T10:00", "03/15/2024",
		float64(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli())} {
		assert.Empty(t, one(f, ok), "value %v", ok)
	}
	for _, bad := range []any{"2023-02-29", "not a date", true, 1e300} {
		assert.Equal(t, []string{"Birthday must be a valid date"}, one(f, bad).Messages(), "value %v", bad)
	}
}

func TestCheckboxIsStrictBoolean(t *testing.T) {
	f := models.FieldSpec{Label: "Agree", Name: "agree", Type: models.FieldCheckbox, Required: true}
	assert.Empty(t, one(f, true))
	assert.Empty(t, one(f, false))
	assert.Equal(t, []string{"Agree must be a boolean"}, one(f, "true").Messages())
}

func TestChoice(t *testing.T) {
	f := models.FieldSpec{Label: "Country", Name: "country", Type: models.FieldSelect, Required: true,
		Options: []models.Option{models.Bare("USA"), models.Labeled("CA", "Canada"), models.Bare(3)}}

	assert.Empty(t, one(f, "USA"))
	assert.Empty(t, one(f, "CA"))
	assert.Empty(t, one(f, 3.0))
	assert.Equal(t, []string{"Country must be one of the provided options"}, one(f, "Canada").Messages())
	assert.Equal(t, []string{"Country must be one of the provided options"}, one(f, "3").Messages())
	assert.Equal(t, []string{"Country must be one of the provided options"}, one(f, []any{"USA"}).Messages())

	noOptions := models.FieldSpec{Label: "Pick", Name: "pick", Type: models.FieldRadio}
	errs := one(noOptions, "x")
	require.Len(t, errs, 1)
	assert.Equal(t, "Pick has no valid options", errs[0].Message)
	assert.Equal(t, CodeConfiguration, errs[0].Code)
}

func TestFileAsymmetry(t *testing.T) {
	required := models.FieldSpec{Label: "Resume", Name: "resume", Type: models.FieldFile, Required: true}
	optional := required
	optional.Required = false

	assert.Empty(t, one(required, "resume-1700000000000-abc.pdf"))
	for _, v := range []any{nil, "", "   ", 5.0} {
		errs := one(required, v)
		require.Len(t, errs, 1, "value %v", v)
		assert.Equal(t, "Resume is required", errs[0].Message)
	}

	assert.Empty(t, one(optional, nil))
	assert.Empty(t, one(optional, ""))
	assert.Equal(t, []string{"Resume must be a valid file path"}, one(optional, "  ").Messages())
	assert.Equal(t, []string{"Resume must be a valid file path"}, one(optional, true).Messages())
}

func countryForm() []models.FieldSpec {
	return []models.FieldSpec{
		{Label: "Country", Name: "country", Type: models.FieldSelect, Required: true,
			Options: []models.Option{models.Bare("USA"), models.Bare("Other")},
			ConditionalFields: map[string][]models.FieldSpec{
				"Other": {
					{Label: "Other Name", Name: "other_name", Type: models.FieldText, Required: true},
					{Label: "Years", Name: "years", Type: models.FieldNumber, Validation: models.Validation{Max: ptrF(5)}},
				},
			}},
		{Label: "Email", Name: "email", Type: models.FieldEmail, Required: true},
	}
}

func TestConditionalReachability(t *testing.T) {
	fields := countryForm()

	errs := Validate(fields, answers("country", "Other", "email", "a@b.co"))
	require.Len(t, errs, 1)
	assert.Equal(t, "Other Name is required", errs[0].Message)
	assert.Equal(t, "country_other_name", errs[0].Field)

	assert.Empty(t, Validate(fields, answers("country", "USA", "email", "a@b.co")))
	// dead branch answers are ignored even when they would fail
	assert.Empty(t, Validate(fields, answers("country", "USA", "email", "a@b.co", "country_years", 99.0)))
}

func TestConditionalErrorsFollowParent(t *testing.T) {
	errs := Validate(countryForm(), answers("country", "Other", "country_years", 9.0))
	assert.Equal(t, []string{
		"Other Name is required",
		"Years must be at most 5",
		"Email is required",
	}, errs.Messages())
}

func TestConditionalBranchKeyedByNumber(t *testing.T) {
	fields := []models.FieldSpec{{
		Label: "Seats", Name: "seats", Type: models.FieldRadio,
		Options: []models.Option{models.Bare(1), models.Bare(2)},
		ConditionalFields: map[string][]models.FieldSpec{
			"2": {{Label: "Guest", Name: "guest", Type: models.FieldText, Required: true}},
		},
	}}
	errs := Validate(fields, answers("seats", 2.0))
	assert.Equal(t, []string{"Guest is required"}, errs.Messages())
	assert.Equal(t, "seats_guest", errs[0].Field)
}

func TestDeeperNestingUsesPrefixedParent(t *testing.T) {
	fields := []models.FieldSpec{{
		Label: "A", Name: "a", Type: models.FieldSelect, Options: []models.Option{models.Bare("x")},
		ConditionalFields: map[string][]models.FieldSpec{"x": {{
			Label: "B", Name: "b", Type: models.FieldRadio, Options: []models.Option{models.Bare("y")},
			ConditionalFields: map[string][]models.FieldSpec{"y": {{
				Label: "C", Name: "c", Type: models.FieldText, Required: true,
			}}},
		}}},
	}}
	errs := Validate(fields, answers("a", "x", "a_b", "y"))
	require.Len(t, errs, 1)
	assert.Equal(t, "a_b_c", errs[0].Field)
}

func TestDuplicateAnswersLastWins(t *testing.T) {
	f := []models.FieldSpec{{Label: "Name", Name: "name", Type: models.FieldText, Required: true}}
	assert.Empty(t, Validate(f, answers("name", "", "name", "Jane")))
	assert.Len(t, Validate(f, answers("name", "Jane", "name", "")), 1)
}

func TestEndToEndScenarios(t *testing.T) {
	fields := []models.FieldSpec{
		{Label: "Name", Name: "name", Type: models.FieldText, Required: true, Order: 0},
		{Label: "Email", Name: "email", Type: models.FieldEmail, Required: true, Order: 1},
	}
	assert.Empty(t, ValidateForm(models.FormSnapshot{Fields: fields},
		answers("name", "John Doe", "email", "john@example.com")))

	errs := Validate(fields, answers("name", ""))
	assert.Contains(t, errs.Messages(), "Name is required")
	assert.Contains(t, errs.Messages(), "Email is required")
	assert.Error(t, errs.Err())
	assert.Equal(t, "Name is required; Email is required", errs.Error())
}

func TestValidateIsFastOnLargeForms(t *testing.T) {
	fields := make([]models.FieldSpec, 0, 500)
	ans := make([]models.Answer, 0, 500)
	for i := 0; i < 500; i++ {
		name := fmt.Sprintf("f%d", i)
		fields = append(fields, models.FieldSpec{Label: name, Name: name, Type: models.FieldText,
			Required: true, Validation: models.Validation{Regex: `^[a-z0-9]+$`}})
		ans = append(ans, models.Answer{Name: name, Value: name})
	}
	testutil.AssertWithin(t, "validate 500 fields", 2*time.Second, func() {
		assert.Empty(t, Validate(fields, ans))
	})
}
