package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleDate(t *testing.T) {
	got, err := ParseScheduleDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseScheduleDate("2024-03-01T18:30:00+09:00")
	require.NoError(t, err)
	assert.Equal(t, 18, got.Hour())

	got, err = ParseScheduleDate("2024-03-01T18:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())

	got, err = ParseScheduleDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.February, got.Month())

	_, err = ParseScheduleDate("2023-02-29")
	assert.Error(t, err)

	_, err = ParseScheduleDate("2024/01/15")
	assert.Error(t, err)

	_, err = ParseScheduleDate("tomorrow")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected yyyy-mm-dd")
}

func TestContent(t *testing.T) {
	assert.Equal(t, []string{"Q1", "Q2"}, SplitContent(" Q1 , ,Q2,"))
	assert.Equal(t, []string{}, SplitContent(""))
	assert.Equal(t, "Q1,Q2", JoinContent([]string{"Q1 ", "", " Q2"}))
	assert.Equal(t, "ans1,ans2", NormalizeContent("ans1 , ans2"))
}
