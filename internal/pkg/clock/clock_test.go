package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Time
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "07:00", want: 420},
		{in: "14:30", want: 870},
		{in: "23:59", want: 1439},
		{in: "7:00", want: 420},
		{in: "24:00", wantErr: true},
		{in: "07:60", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "07:05", New(7, 5).String())
	assert.Equal(t, "00:00", Time(0).String())
	assert.Equal(t, "23:59", Time(1439).String())
}

func TestHourMinute(t *testing.T) {
	t.Parallel()

	tm := MustParse("14:45")
	assert.Equal(t, 14, tm.Hour())
	assert.Equal(t, 45, tm.Minute())
	assert.Equal(t, 885, tm.Minutes())
}
