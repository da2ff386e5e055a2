package network

import (
	"testing"

	"golang.org/x/time/rate"
)

func TestNewLimiter(t *testing.T) {
	type args struct {
		perMinute int
		burst     uint
		boost     int
	}
	tests := []struct {
		name       string
		args       args
		wantPerSec rate.Limit
		wantBurst  int
	}{
		{
			name: "default rate",
			args: args{
				perMinute: DefLimits.PerMinute,
				burst:     1,
				boost:     0,
			},
			wantPerSec: 10,
			wantBurst:  1,
		},
		{
			name: "boost raises the rate",
			args: args{
				perMinute: 540,
				burst:     3,
				boost:     60,
			},
			wantPerSec: 10,
			wantBurst:  3,
		},
		{
			name: "one per second",
			args: args{
				perMinute: 60,
				burst:     1,
				boost:     0,
			},
			wantPerSec: 1,
			wantBurst:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewLimiter(tt.args.perMinute, tt.args.burst, tt.args.boost)
			if got.Limit() != tt.wantPerSec {
				t.Errorf("NewLimiter() = %v, want %v", got.Limit(), tt.wantPerSec)
			}
			if got.Burst() != tt.wantBurst {
				t.Errorf("NewLimiter() burst = %v, want %v", got.Burst(), tt.wantBurst)
			}
		})
	}
}
