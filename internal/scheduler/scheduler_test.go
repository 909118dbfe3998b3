package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "23:55", want: "0 55 23 * * *"},
		{in: "00:00", want: "0 0 0 * * *"},
		{in: " 7:05 ", want: "0 5 7 * * *"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12:30:00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := buildDailySpec(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScheduleDaily_NextRunInLocation(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	s := New(paris)
	id, err := s.ScheduleDaily("23:55", func() {})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	require.Eventually(t, func() bool { return !s.Next(id).IsZero() }, time.Second, 10*time.Millisecond)
	next := s.Next(id).In(paris)
	assert.Equal(t, 23, next.Hour())
	assert.Equal(t, 55, next.Minute())
	assert.True(t, next.After(time.Now()))
}

func TestScheduleDaily_RejectsBadTime(t *testing.T) {
	s := New(nil)
	_, err := s.ScheduleDaily("25:00", func() {})
	assert.Error(t, err)
}
