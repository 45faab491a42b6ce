package market

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
)

// barDTO is the CSV row shape: lower-cased headers, timezone-naive timestamps.
type barDTO struct {
	Time   string  `csv:"time"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume float64 `csv:"volume"`
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseBarTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

// LoadCSV reads an OHLCV file into a Series and validates bar ordering.
func LoadCSV(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bars: %w", err)
	}
	defer f.Close()

	var rows []*barDTO
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse bars %s: %w", path, err)
	}

	series := make(Series, 0, len(rows))
	for i, row := range rows {
		t, err := parseBarTime(row.Time)
		if err != nil {
			return nil, fmt.Errorf("parse bars %s: row %d: %w", path, i+1, err)
		}
		series = append(series, NewBar(t, row.Open, row.High, row.Low, row.Close, row.Volume))
	}

	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("load bars %s: %w", path, err)
	}
	return series, nil
}

// WriteCSV writes the OHLCV columns of a series. Indicator columns are
// derived data and are not persisted.
func WriteCSV(path string, s Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bars: %w", err)
	}
	defer f.Close()

	rows := make([]*barDTO, 0, len(s))
	for _, b := range s {
		rows = append(rows, &barDTO{
			Time:   b.Time.UTC().Format("2006-01-02 15:04:05"),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("write bars %s: %w", path, err)
	}
	return nil
}
