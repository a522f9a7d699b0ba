// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookFields struct {
	Subject  string `validate:"required,subject"`
	Stream   string `validate:"required,stream"`
	Semester int    `validate:"required,semester"`
}

func TestBookFieldValidators(t *testing.T) {
	valid := bookFields{Subject: "Applied Physics", Stream: "CSE", Semester: 3}
	assert.NoError(t, ValidateStruct(&valid))

	cases := []struct {
		name  string
		input bookFields
		field string
	}{
		{"unknown subject", bookFields{Subject: "Alchemy", Stream: "CSE", Semester: 3}, "subject"},
		{"unknown stream", bookFields{Subject: "Applied Physics", Stream: "XYZ", Semester: 3}, "stream"},
		{"semester too high", bookFields{Subject: "Applied Physics", Stream: "CSE", Semester: 7}, "semester"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(&tc.input)
			assert.Error(t, err)

			errs := GetValidationErrors(err)
			assert.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestStrongPassword(t *testing.T) {
	type creds struct {
		Password string `validate:"strong_password"`
	}

	cases := []struct {
		password string
		ok       bool
	}{
		{"Abcdef12", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoNumbersHere", false},
	}

	for _, tc := range cases {
		err := ValidateStruct(&creds{Password: tc.password})
		if tc.ok {
			assert.NoError(t, err, tc.password)
		} else {
			assert.Error(t, err, tc.password)
		}
	}
}

func TestGetValidationErrorsNonValidatorError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
