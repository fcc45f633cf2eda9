package controllers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		unset   bool
		wantErr bool
	}{
		{in: `"2025-04-10"`, want: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)},
		{in: `"2025-04-10T09:30"`, want: time.Date(2025, 4, 10, 9, 30, 0, 0, time.UTC)},
		{in: `"2025-04-10T09:30:00+02:00"`, want: time.Date(2025, 4, 10, 7, 30, 0, 0, time.UTC)},
		{in: `null`, unset: true},
		{in: `""`, unset: true},
		{in: `"10/04/2025"`, wantErr: true},
		{in: `20250410`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.unset {
				assert.Nil(t, d.Ptr())
				return
			}
			require.NotNil(t, d.Ptr())
			assert.True(t, tt.want.Equal(*d.Ptr()), "got %s", d.Time)
		})
	}

	var nilDate *Date
	assert.Nil(t, nilDate.Ptr())
}
