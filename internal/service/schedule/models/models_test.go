package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func TestReplaceScheduleRequest_ToDomainSchedule(t *testing.T) {
	t.Run("open day requires both times", func(t *testing.T) {
		req := ReplaceScheduleRequest{BusinessID: 1, Days: []DayScheduleRequest{
			{DayOfWeek: 1, IsOpen: true, OpenTime: ptr.Ptr("09:00")},
		}}

		_, err := req.ToDomainSchedule()
		assert.ErrorIs(t, err, ErrMissingTimes)
	})

	t.Run("closed day ignores times", func(t *testing.T) {
		req := ReplaceScheduleRequest{BusinessID: 1, Days: []DayScheduleRequest{
			{DayOfWeek: 0, IsOpen: false, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("17:00")},
		}}

		schedule, err := req.ToDomainSchedule()
		require.NoError(t, err)
		require.Len(t, schedule, 1)
		assert.False(t, schedule[0].IsOpen)
		assert.Nil(t, schedule[0].OpenTime)
		assert.Nil(t, schedule[0].CloseTime)
	})

	t.Run("close must be after open", func(t *testing.T) {
		req := ReplaceScheduleRequest{BusinessID: 1, Days: []DayScheduleRequest{
			{DayOfWeek: 1, IsOpen: true, OpenTime: ptr.Ptr("17:00"), CloseTime: ptr.Ptr("09:00")},
		}}

		_, err := req.ToDomainSchedule()
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("day out of range", func(t *testing.T) {
		req := ReplaceScheduleRequest{BusinessID: 1, Days: []DayScheduleRequest{
			{DayOfWeek: 7, IsOpen: false},
		}}

		_, err := req.ToDomainSchedule()
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("duplicate days rejected", func(t *testing.T) {
		req := ReplaceScheduleRequest{BusinessID: 1, Days: []DayScheduleRequest{
			{DayOfWeek: 1, IsOpen: false},
			{DayOfWeek: 1, IsOpen: false},
		}}

		_, err := req.ToDomainSchedule()
		assert.ErrorIs(t, err, ErrInvalidDay)
	})

	t.Run("full week converts", func(t *testing.T) {
		req := ReplaceScheduleRequest{BusinessID: 1, Days: []DayScheduleRequest{
			{DayOfWeek: 0, IsOpen: false},
			{DayOfWeek: 1, IsOpen: true, OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("17:00")},
		}}

		schedule, err := req.ToDomainSchedule()
		require.NoError(t, err)
		require.Len(t, schedule, 2)
		assert.Equal(t, types.TimeString("09:00"), *schedule[1].OpenTime)
		assert.Equal(t, int64(1), schedule[1].BusinessID)
	})
}
