package entity

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncateNarrative(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "short", in: "Sunny in Delhi #Delhi", want: 21},
		{name: "exactly limit", in: strings.Repeat("a", 280), want: 280},
		{name: "one over", in: strings.Repeat("a", 281), want: 280},
		{name: "multibyte over", in: strings.Repeat("☀", 400), want: 280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateNarrative(tt.in)
			if got.Len() != tt.want {
				t.Fatalf("expected %d characters, got %d", tt.want, got.Len())
			}
			if !got.Valid() {
				t.Fatal("truncated text must be valid")
			}
			if TruncateNarrative(got.String()) != got {
				t.Fatal("truncation must be idempotent")
			}
		})
	}
}

func TestTruncateNarrativeKeepsPrefix(t *testing.T) {
	in := strings.Repeat("é", 150) + strings.Repeat("b", 160)
	got := TruncateNarrative(in)

	runes := []rune(in)
	if !strings.HasPrefix(got.String(), string(runes[:277])) || !strings.HasSuffix(got.String(), NarrativeEllipsis) {
		t.Fatalf("unexpected truncation %q", got)
	}
	if utf8.RuneCountInString(got.String()) != NarrativeLimit {
		t.Fatalf("expected %d characters", NarrativeLimit)
	}
	if short := "unchanged text"; TruncateNarrative(short).String() != short {
		t.Fatal("short text must be returned unchanged")
	}
}

func TestWeatherRecordLabels(t *testing.T) {
	aqi, pm := 0, 12.5
	record := WeatherRecord{AQIUS: &aqi, PM25: &pm}
	if record.AQILabel() != "0" || record.PM25Label() != "12.5" || record.PM10Label() != NotAvailable {
		t.Fatalf("unexpected labels %s %s %s", record.AQILabel(), record.PM25Label(), record.PM10Label())
	}
}

func TestPostURL(t *testing.T) {
	if got := PostURL("twitter.com", "weatherbot", "1846"); got != "https://twitter.com/weatherbot/status/1846" {
		t.Fatalf("unexpected url %q", got)
	}
}
