package domain

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SkillDataPeriod is the period a client asks skill history for.
type SkillDataPeriod string

const (
	SkillDataPeriodDay   SkillDataPeriod = "Day"
	SkillDataPeriodWeek  SkillDataPeriod = "Week"
	SkillDataPeriodMonth SkillDataPeriod = "Month"
	SkillDataPeriodYear  SkillDataPeriod = "Year"
)

// AggregatePeriod is the stored granularity of skill history.
type AggregatePeriod string

const (
	AggregatePeriodDay   AggregatePeriod = "day"
	AggregatePeriodMonth AggregatePeriod = "month"
	AggregatePeriodYear  AggregatePeriod = "year"
)

// AllAggregatePeriods lists every stored granularity in write order.
var AllAggregatePeriods = []AggregatePeriod{
	AggregatePeriodDay,
	AggregatePeriodMonth,
	AggregatePeriodYear,
}

var periodTitler = cases.Title(language.English)

// ParseSkillDataPeriod accepts "day", "DAY", "Day" and so on.
func ParseSkillDataPeriod(s string) (SkillDataPeriod, error) {
	p := SkillDataPeriod(periodTitler.String(strings.TrimSpace(s)))
	switch p {
	case SkillDataPeriodDay, SkillDataPeriodWeek, SkillDataPeriodMonth, SkillDataPeriodYear:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSkillPeriod, s)
}

// AggregatePeriod maps a requested period to the stored granularity.
// Week reads the month aggregate, same as Month.
func (p SkillDataPeriod) AggregatePeriod() AggregatePeriod {
	switch p {
	case SkillDataPeriodDay:
		return AggregatePeriodDay
	case SkillDataPeriodWeek, SkillDataPeriodMonth:
		return AggregatePeriodMonth
	default:
		return AggregatePeriodYear
	}
}

// BucketUnit is the date_trunc unit used for snapshots of this granularity.
func (a AggregatePeriod) BucketUnit() string {
	switch a {
	case AggregatePeriodDay:
		return "hour"
	case AggregatePeriodMonth:
		return "day"
	default:
		return "month"
	}
}

// Window is how far back history of this granularity is returned.
func (a AggregatePeriod) Window() time.Duration {
	switch a {
	case AggregatePeriodDay:
		return 24 * time.Hour
	case AggregatePeriodMonth:
		return 30 * 24 * time.Hour
	default:
		return 365 * 24 * time.Hour
	}
}

// Truncate returns the start of the bucket containing t.
func (a AggregatePeriod) Truncate(t time.Time) time.Time {
	t = t.UTC()
	switch a {
	case AggregatePeriodDay:
		return t.Truncate(time.Hour)
	case AggregatePeriodMonth:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

// SkillSnapshot is one stored bucket of a member's skill experience.
type SkillSnapshot struct {
	Time time.Time `json:"time"`
	Data []int32   `json:"data"`
}

// MemberSkillData is the skill history of one member.
type MemberSkillData struct {
	Name      string          `json:"name"`
	SkillData []SkillSnapshot `json:"skill_data"`
}

// GroupSkillData is the skill history of every member in a group.
type GroupSkillData []MemberSkillData
