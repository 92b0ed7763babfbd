package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"larp-manager-server/internal/schemas"
)

func TestGetValidatorIsShared(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestUsernameValidation(t *testing.T) {
	validate := GetValidator().Validate

	testCases := []struct {
		name     string
		username string
		valid    bool
	}{
		{"Plain username", "gamemaster", true},
		{"Username with separators", "game.master-01_", true},
		{"Username with spaces", "game master", false},
		{"Username with markup", "<b>gm</b>", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Var(tc.username, "username_validation")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPasswordValidation(t *testing.T) {
	validate := GetValidator().Validate

	testCases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"All character classes", "Sup3r.Secret", true},
		{"Missing uppercase", "sup3r.secret", false},
		{"Missing number", "Super.Secret", false},
		{"Missing special character", "Sup3rSecret", false},
		{"Non-ASCII characters", "Sup3r.Sécret", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Var(tc.password, "password_validation")
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSanitizeData(t *testing.T) {
	request := &schemas.LoginRequest{
		Username: "<b>gamemaster</b>",
		Password: "<script>alert(1)</script>Sup3r.Secret",
	}

	SanitizeData(request)

	assert.Equal(t, "gamemaster", request.Username)
	assert.Equal(t, "Sup3r.Secret", request.Password)
}

func TestSanitizeDataNested(t *testing.T) {
	type inner struct {
		Note string
	}
	type outer struct {
		Title   string
		Inner   inner
		InnerPt *inner
	}

	payload := &outer{
		Title:   "<h1>title</h1>",
		Inner:   inner{Note: "<i>note</i>"},
		InnerPt: &inner{Note: "<u>other</u>"},
	}

	SanitizeData(payload)

	assert.Equal(t, "title", payload.Title)
	assert.Equal(t, "note", payload.Inner.Note)
	assert.Equal(t, "other", payload.InnerPt.Note)
}

func TestGenerateTraceId(t *testing.T) {
	traceId := GenerateTraceId()

	_, err := uuid.Parse(traceId)
	assert.NoError(t, err)
	assert.NotEqual(t, traceId, GenerateTraceId())
}
