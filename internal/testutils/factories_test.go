package testutils

import (
	"testing"

	"marina-guard-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestUserFactoryProducesDistinctIdentities(t *testing.T) {
	f := NewUserFactory()
	a, b := f.Create(), f.Create()

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ExternalID, b.ExternalID)
	assert.NotEqual(t, a.Email, b.Email)
	assert.Equal(t, models.RoleGuard, a.Role)
	assert.True(t, f.Archived().IsArchived())
}

func TestDutySessionFactoryStates(t *testing.T) {
	f := NewDutySessionFactory()
	user := NewUserFactory().Create()
	location := NewLocationFactory().Create()

	assert.Equal(t, models.DutyStateOnDuty, f.Create(user.ID).State())
	assert.Equal(t, models.DutyStateOnDutyAtLocation, f.AtLocation(user.ID, location.ID).State())
	assert.Equal(t, models.DutyStateOffDuty, f.Closed(user.ID).State())
}

func TestShiftFactoryWindow(t *testing.T) {
	shift := NewShiftFactory().Create(NewLocationFactory().Create().ID)
	assert.True(t, shift.EndTime.After(shift.StartTime))
}
