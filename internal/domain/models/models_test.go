package models

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_WorkExperience_CurrentRole_EndsPresent(t *testing.T) {
	exp := WorkExperience{Company: "Acme", Role: "Engineer", EndDate: "2024", IsCurrent: true}
	exp.Normalize()
	assert.Equal(t, Present, exp.EndDate)
}

func Test_Validate_CurrentRoleWithEndDate_Fails(t *testing.T) {
	assert := assert.New(t)

	exp := WorkExperience{Company: "Acme", Role: "Engineer", EndDate: "2024", IsCurrent: true}
	assert.Error(Validate(exp))

	exp.Normalize()
	assert.NoError(Validate(exp))
}

func Test_Validate_MissingRequired_Fails(t *testing.T) {
	assert := assert.New(t)

	assert.Error(Validate(WorkExperience{Role: "Engineer"}))
	assert.Error(Validate(Award{}))
	assert.Error(Validate(Contact{Email: "not-an-email"}))
	assert.NoError(Validate(Contact{Email: "jane@example.com"}))
	assert.NoError(Validate(Contact{}))
}

func Test_ParseStatus(t *testing.T) {
	assert := assert.New(t)

	status, err := ParseStatus(" Interviewing ")
	assert.NoError(err)
	assert.Equal(StatusInterviewing, status)

	_, err = ParseStatus("ghosted")
	assert.Error(err)
}

func Test_Status_Classification(t *testing.T) {
	assert := assert.New(t)

	assert.True(StatusOffer.WasSubmitted())
	assert.False(StatusDraft.WasSubmitted())
	assert.False(StatusWithdrawn.WasSubmitted())
	assert.True(StatusWithdrawn.IsClosed())
	assert.False(StatusInterviewing.IsClosed())
}

func Test_Application_ApplyDefaults(t *testing.T) {
	app := Application{Company: "  "}
	app.ApplyDefaults()

	assert.Equal(t, DefaultCompany, app.Company)
	assert.Equal(t, DefaultRole, app.Role)
	assert.Equal(t, StatusCreated, app.Status)
}

func Test_NewID_IsShortAndUnique(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}

func Test_Skills_IsEmpty(t *testing.T) {
	assert.True(t, NewSkills().IsEmpty())
	assert.False(t, Skills{Tools: []string{"git"}}.IsEmpty())
}
