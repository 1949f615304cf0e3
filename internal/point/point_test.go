package point

import (
	"math"
	"testing"

	"github.com/metrondb/metrond/internal/errors"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		point   Point
		wantErr bool
	}{
		{
			name:  "valid point",
			point: Point{Name: "hosts.aura.cpu_load", Timestamp: 1700000000000, Value: 0.5},
		},
		{
			name:  "zero timestamp",
			point: Point{Name: "hosts.aura.cpu_load", Timestamp: 0, Value: 1},
		},
		{
			name:  "zero value",
			point: Point{Name: "hosts.aura.cpu_load", Timestamp: 100, Value: 0},
		},
		{
			name:  "negative value",
			point: Point{Name: "sensors.delta", Timestamp: 100, Value: -273.15},
		},
		{
			name:    "empty name",
			point:   Point{Name: "", Timestamp: 100, Value: 1},
			wantErr: true,
		},
		{
			name:    "NaN value",
			point:   Point{Name: "hosts.aura.cpu_load", Timestamp: 100, Value: math.NaN()},
			wantErr: true,
		},
		{
			name:    "positive infinity",
			point:   Point{Name: "hosts.aura.cpu_load", Timestamp: 100, Value: math.Inf(1)},
			wantErr: true,
		},
		{
			name:    "negative infinity",
			point:   Point{Name: "hosts.aura.cpu_load", Timestamp: 100, Value: math.Inf(-1)},
			wantErr: true,
		},
		{
			name:    "negative timestamp",
			point:   Point{Name: "hosts.aura.cpu_load", Timestamp: -1, Value: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.point.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, errors.ErrInvalidPoint) {
					t.Errorf("error %v is not ErrInvalidPoint", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want bool
	}{
		{
			name: "name orders first",
			a:    Point{Name: "hosts.aura.cpu_load", Timestamp: 200},
			b:    Point{Name: "hosts.beta.cpu_load", Timestamp: 100},
			want: true,
		},
		{
			name: "timestamp breaks ties",
			a:    Point{Name: "hosts.aura.cpu_load", Timestamp: 100},
			b:    Point{Name: "hosts.aura.cpu_load", Timestamp: 200},
			want: true,
		},
		{
			name: "equal keys",
			a:    Point{Name: "hosts.aura.cpu_load", Timestamp: 100},
			b:    Point{Name: "hosts.aura.cpu_load", Timestamp: 100},
			want: false,
		},
		{
			name: "greater name",
			a:    Point{Name: "hosts.beta.cpu_load", Timestamp: 100},
			b:    Point{Name: "hosts.aura.cpu_load", Timestamp: 200},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less = %v, want %v", got, tt.want)
			}
		})
	}
}
