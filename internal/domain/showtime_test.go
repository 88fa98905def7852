package domain

import "testing"

func TestNormalizeShowTime(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"19:30", "19:30:00", false},
		{"09:05:10", "09:05:10", false},
		{"9:30", "", true},
		{"25:00", "", true},
		{"19:30pm", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeShowTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeShowTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShowtimeUpdateEmpty(t *testing.T) {
	if !(ShowtimeUpdate{}).Empty() {
		t.Error("zero update should be empty")
	}

	seats := 10
	if (ShowtimeUpdate{AvailableSeats: &seats}).Empty() {
		t.Error("update with seats should not be empty")
	}
	if (ShowtimeUpdate{ClearTheater: true}).Empty() {
		t.Error("clearing theater is an update")
	}
}
