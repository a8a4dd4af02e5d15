package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"NextVWAP/internal/model"
)

var est = time.FixedZone("EST", -5*60*60)

func TestCollect_DropsCurrentDay(t *testing.T) {
	yesterday := time.Date(2024, 1, 16, 15, 55, 0, 0, est)
	midnight := time.Date(2024, 1, 17, 0, 0, 0, 0, est)
	today := time.Date(2024, 1, 17, 9, 30, 0, 0, est)
	f := &StaticFetcher{Bars: []model.Bar{
		{Time: yesterday, High: 1, Low: 1, Close: 1, Volume: 1},
		{Time: midnight, High: 2, Low: 2, Close: 2, Volume: 1},
		{Time: today, High: 3, Low: 3, Close: 3, Volume: 1},
	}}
	c := NewCollector(f, 60, 5*time.Minute)
	c.Now = func() time.Time { return time.Date(2024, 1, 17, 11, 0, 0, 0, est) }

	series, err := c.Collect(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 1 {
		t.Fatalf("expected only bars before midnight, got %d", len(series.Bars))
	}
	if !series.Bars[0].Time.Equal(yesterday) {
		t.Errorf("kept bar at %v, want %v", series.Bars[0].Time, yesterday)
	}
	if series.Provider != "static" || series.Symbol != "AAPL" {
		t.Errorf("series metadata = %q/%q", series.Provider, series.Symbol)
	}
	if f.Calls != 1 {
		t.Errorf("expected a single fetch, got %d", f.Calls)
	}
}

func TestCollect_CutoffUsesExchangeDay(t *testing.T) {
	// 02:00 UTC on the 17th is still the evening of the 16th in New York.
	now := time.Date(2024, 1, 17, 2, 0, 0, 0, time.UTC)
	bar := model.Bar{Time: time.Date(2024, 1, 16, 15, 0, 0, 0, est), Volume: 1}
	c := NewCollector(&StaticFetcher{Bars: []model.Bar{bar}}, 60, 5*time.Minute)
	c.Now = func() time.Time { return now }

	series, err := c.Collect(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 0 {
		t.Errorf("bar of the current exchange day must be dropped, kept %d", len(series.Bars))
	}
}

func TestCollect_LocationOverride(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	bar := model.Bar{Time: time.Date(2024, 1, 16, 20, 0, 0, 0, time.UTC), Volume: 1}
	c := NewCollector(&StaticFetcher{Bars: []model.Bar{bar}}, 60, 5*time.Minute)
	c.Location = tokyo
	c.Now = func() time.Time { return time.Date(2024, 1, 18, 0, 0, 0, 0, tokyo) }

	series, err := c.Collect(context.Background(), "7203.T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Bars) != 1 || series.Bars[0].Time.Location() != tokyo {
		t.Fatalf("expected bar converted to override location, got %+v", series.Bars)
	}
	if series.Location() != tokyo {
		t.Errorf("series location = %v", series.Location())
	}
}

func TestCollect_EmptyIsNotFound(t *testing.T) {
	c := NewCollector(&StaticFetcher{}, 60, 5*time.Minute)
	_, err := c.Collect(context.Background(), "NOPE")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Symbol != "NOPE" {
		t.Errorf("unexpected error value: %#v", err)
	}
}

func TestCollect_PropagatesFetchError(t *testing.T) {
	boom := errors.New("connection reset")
	c := NewCollector(&StaticFetcher{Err: boom}, 60, 5*time.Minute)
	_, err := c.Collect(context.Background(), "AAPL")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("network failure must not be reported as not found")
	}
}

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{Symbol: "ZZZZ", Provider: "yahoo", Reason: "No data found"}
	want := `yahoo: stock ticker "ZZZZ" not found (No data found)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
