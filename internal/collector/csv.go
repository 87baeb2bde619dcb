package collector

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"SignalSentinel/internal/model"
)

const dateLayout = "2006-01-02"

var dateLayouts = []string{dateLayout, "2006/01/02", time.RFC3339}

var requiredColumns = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// CSVSource reads a Date,Open,High,Low,Close,Volume file.
type CSVSource struct {
	Path   string
	Symbol string
}

// NewCSVSource creates a CSVSource.
func NewCSVSource(path, symbol string) *CSVSource {
	return &CSVSource{Path: path, Symbol: symbol}
}

func (s *CSVSource) Name() string { return "csv:" + s.Path }

// Load opens and parses the file.
func (s *CSVSource) Load(_ context.Context) (model.PriceSeries, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ParseCSV(f, s.Symbol)
}

// ParseCSV reads bars from r. Columns are located by header name, so order and
// extra columns do not matter. Every row must parse; none are skipped.
func ParseCSV(r io.Reader, symbol string) (model.PriceSeries, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return model.PriceSeries{}, &model.MalformedInputError{Line: 1, Reason: "missing header row"}
	}
	if err != nil {
		return model.PriceSeries{}, fmt.Errorf("read csv header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return model.PriceSeries{}, err
	}

	series := model.PriceSeries{Symbol: symbol}
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return model.PriceSeries{}, &model.MalformedInputError{Line: line, Reason: err.Error()}
		}
		bar, err := parseRecord(record, cols, line)
		if err != nil {
			return model.PriceSeries{}, err
		}
		series.Bars = append(series.Bars, bar)
	}

	if err := Validate(series, 2); err != nil {
		return model.PriceSeries{}, err
	}
	return series, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		for _, want := range requiredColumns {
			if strings.EqualFold(name, want) {
				idx[want] = i
			}
		}
	}
	for _, want := range requiredColumns {
		if _, ok := idx[want]; !ok {
			return nil, &model.MalformedInputError{Line: 1, Field: want, Reason: "required column is missing"}
		}
	}
	return idx, nil
}

func parseRecord(record []string, cols map[string]int, line int) (model.PriceBar, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var bar model.PriceBar
	date, err := parseDate(field("Date"))
	if err != nil {
		return bar, &model.MalformedInputError{Line: line, Field: "Date", Value: field("Date"), Reason: "unparseable date"}
	}
	bar.Date = date

	prices := []struct {
		name string
		dst  *float64
	}{
		{"Open", &bar.Open}, {"High", &bar.High}, {"Low", &bar.Low}, {"Close", &bar.Close},
	}
	for _, p := range prices {
		v, err := strconv.ParseFloat(field(p.name), 64)
		if err != nil {
			return bar, &model.MalformedInputError{Line: line, Field: p.name, Value: field(p.name), Reason: "not a number"}
		}
		*p.dst = v
	}

	vol, err := parseVolume(field("Volume"))
	if err != nil {
		return bar, &model.MalformedInputError{Line: line, Field: "Volume", Value: field("Volume"), Reason: err.Error()}
	}
	bar.Volume = vol
	return bar, nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseVolume accepts integers and integral floats such as "31250.0".
func parseVolume(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New("not a number")
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, errors.New("volume must be an integer")
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.New("volume out of range")
	}
	return int64(f), nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }
