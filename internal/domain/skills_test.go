package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillDataPeriod(t *testing.T) {
	tests := []struct {
		input string
		want  SkillDataPeriod
	}{
		{"Day", SkillDataPeriodDay},
		{"day", SkillDataPeriodDay},
		{"WEEK", SkillDataPeriodWeek},
		{" month ", SkillDataPeriodMonth},
		{"Year", SkillDataPeriodYear},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSkillDataPeriod(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSkillDataPeriod_Invalid(t *testing.T) {
	for _, input := range []string{"", "fortnight", "days"} {
		_, err := ParseSkillDataPeriod(input)
		assert.ErrorIs(t, err, ErrInvalidSkillPeriod, input)
	}
}

func TestSkillDataPeriod_AggregatePeriod(t *testing.T) {
	assert.Equal(t, AggregatePeriodDay, SkillDataPeriodDay.AggregatePeriod())
	// Week and Month share the month aggregate
	assert.Equal(t, AggregatePeriodMonth, SkillDataPeriodWeek.AggregatePeriod())
	assert.Equal(t, AggregatePeriodMonth, SkillDataPeriodMonth.AggregatePeriod())
	assert.Equal(t, AggregatePeriodYear, SkillDataPeriodYear.AggregatePeriod())
}

func TestAggregatePeriod_Truncate(t *testing.T) {
	ts := time.Date(2024, time.March, 17, 13, 45, 12, 0, time.UTC)

	assert.Equal(t, time.Date(2024, time.March, 17, 13, 0, 0, 0, time.UTC), AggregatePeriodDay.Truncate(ts))
	assert.Equal(t, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), AggregatePeriodMonth.Truncate(ts))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), AggregatePeriodYear.Truncate(ts))
}
