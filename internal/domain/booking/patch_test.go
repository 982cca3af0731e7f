package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/beauty-booking/internal/apperr"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestScheduleDerivesEndTime(t *testing.T) {
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	svc := &models.Service{ID: 3, Duration: 45 * time.Minute}

	var b models.Booking
	Schedule(&b, start, svc)

	assert.Equal(t, uint(3), b.ServiceID)
	assert.Equal(t, start.Add(45*time.Minute), b.EndTime)
}

func TestValidateStartUsesWriteTime(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateStart(now.Add(time.Minute), now))
	assert.NoError(t, ValidateStart(now, now))

	err := ValidateStart(now.Add(-time.Minute), now)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalid))

	err = ValidateStart(time.Time{}, now)
	assert.True(t, apperr.IsCode(err, apperr.CodeInvalid))
}

func TestPatchLeavesPastStartAloneWhenUntouched(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	b := &models.Booking{StartTime: past, EndTime: past.Add(time.Hour), ServiceID: 1}

	p := Patch{Completed: ptr(true), StartTime: ptr(past)}
	require.False(t, p.Reschedules(b))
	require.NoError(t, p.Apply(b, nil, now))

	assert.True(t, b.Completed)
	assert.Equal(t, past, b.StartTime)
}

func TestPatchRejectsMovingIntoThePast(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	b := &models.Booking{StartTime: now.Add(time.Hour), ServiceID: 1}
	svc := &models.Service{ID: 1, Duration: time.Hour}

	p := Patch{StartTime: ptr(now.Add(-time.Hour))}
	require.True(t, p.Reschedules(b))

	err := p.Apply(b, svc, now)
	var ae *apperr.AppError
	require.ErrorAs(t, err, &ae)
	assert.Contains(t, ae.Fields, "start_time")
}

func TestPatchRescheduleRecomputesEnd(t *testing.T) {
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(24 * time.Hour)
	b := &models.Booking{StartTime: start, EndTime: start.Add(time.Hour), ServiceID: 1}
	longer := &models.Service{ID: 2, Duration: 90 * time.Minute}

	p := Patch{ServiceID: ptr(uint(2)), Notes: ptr("bring photos")}
	require.True(t, p.Reschedules(b))
	require.NoError(t, p.Apply(b, longer, now))

	assert.Equal(t, uint(2), b.ServiceID)
	assert.Equal(t, start.Add(90*time.Minute), b.EndTime)
	assert.Equal(t, "bring photos", b.Notes)
}

func TestValidateNotesLength(t *testing.T) {
	long := make([]rune, models.MaxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}

	assert.NoError(t, ValidateNotes("short"))
	assert.Error(t, ValidateNotes(string(long)))
}
