package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() map[string]interface{} {
	return map[string]interface{}{
		"role":  "therapist",
		"name":  "Dr. Maya Patel",
		"email": "maya.patel@example.com",
	}
}

func TestValidateMissingRequiredField(t *testing.T) {
	r := Default()

	raw := validUser()
	delete(raw, "name")

	_, err := r.Validate(KindUser, raw)
	var missing MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
}

func TestValidateNullCountsAsAbsent(t *testing.T) {
	r := Default()

	raw := validUser()
	raw["email"] = nil

	_, err := r.Validate(KindUser, raw)
	var missing MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "email", missing.Field)
}

func TestValidateEmailFormat(t *testing.T) {
	r := Default()

	for _, bad := range []string{"not-an-email", "missing@dot", "@nolocal.com", "two@@ats.com", "spaces in@mail.com"} {
		raw := validUser()
		raw["email"] = bad

		_, err := r.Validate(KindUser, raw)
		var format InvalidFormatError
		require.ErrorAs(t, err, &format, "email %q should be rejected", bad)
		assert.Equal(t, "email", format.Field)
	}

	raw := validUser()
	raw["email"] = "  valid@example.com  "
	rec, err := r.Validate(KindUser, raw)
	require.NoError(t, err)
	assert.Equal(t, "valid@example.com", rec["email"], "email is stored trimmed")
}

func TestValidateDefaults(t *testing.T) {
	r := Default()

	rec, err := r.Validate(KindUser, validUser())
	require.NoError(t, err)

	assert.Equal(t, true, rec["virtual"])
	assert.Equal(t, false, rec["in_person"])
	assert.Equal(t, []string{}, rec["specialties"])
	assert.Equal(t, []string{}, rec["certifications"])

	// Optional fields without defaults stay absent, not null.
	_, present := rec["bio"]
	assert.False(t, present)
}

func TestValidateBookingStatusDefault(t *testing.T) {
	r := Default()

	rec, err := r.Validate(KindBooking, map[string]interface{}{
		"therapist_id": "abc123",
		"client_name":  "Sam",
		"client_email": "sam@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", rec["status"])
	assert.Equal(t, []string{}, rec["preferred_times"])
}

func TestValidateWeekdayRange(t *testing.T) {
	r := Default()

	base := func(weekday interface{}) map[string]interface{} {
		return map[string]interface{}{
			"therapist_id": "abc123",
			"weekday":      weekday,
			"time_ranges":  []interface{}{"09:00-12:00"},
		}
	}

	for _, out := range []interface{}{-1, 7, float64(12)} {
		_, err := r.Validate(KindAvailability, base(out))
		var rangeErr RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "weekday", rangeErr.Field)
		assert.Equal(t, 0, rangeErr.Min)
		assert.Equal(t, 6, rangeErr.Max)
	}

	// JSON numbers arrive as float64 and are coerced to int.
	rec, err := r.Validate(KindAvailability, base(float64(3)))
	require.NoError(t, err)
	assert.Equal(t, 3, rec["weekday"])

	// A fractional weekday is a format problem, not a range problem.
	_, err = r.Validate(KindAvailability, base(2.5))
	var format InvalidFormatError
	require.ErrorAs(t, err, &format)
}

func TestValidateSequenceElements(t *testing.T) {
	r := Default()

	raw := validUser()
	raw["specialties"] = []interface{}{"Trauma", 42}

	_, err := r.Validate(KindUser, raw)
	var format InvalidFormatError
	require.ErrorAs(t, err, &format)
	assert.Equal(t, "specialties", format.Field)
}

func TestValidateIgnoresUnknownFields(t *testing.T) {
	r := Default()

	raw := validUser()
	raw["favorite_color"] = "teal"

	rec, err := r.Validate(KindUser, raw)
	require.NoError(t, err)
	_, present := rec["favorite_color"]
	assert.False(t, present)
}

func TestValidateBusinessRule(t *testing.T) {
	r := Default()

	raw := validUser()
	raw["role"] = "client"

	_, err := r.Validate(KindUser, raw, OneOf("role", "therapist"))
	var rule BusinessRuleError
	require.ErrorAs(t, err, &rule)
	assert.Contains(t, rule.Rule, "role")

	raw["role"] = "therapist"
	_, err = r.Validate(KindUser, raw, OneOf("role", "therapist"))
	assert.NoError(t, err)
}

func TestValidateUnknownKind(t *testing.T) {
	r := Default()

	_, err := r.Validate("nope", map[string]interface{}{})
	var unknown UnknownKindError
	require.ErrorAs(t, err, &unknown)
}
