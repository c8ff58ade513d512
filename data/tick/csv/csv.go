// Package csv loads historical OHLCV observations for a single symbol from
// a local file with rows of timestamp,open,close,volume
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/allaccountstaken/robo-advisors/log"
	"github.com/shopspring/decimal"
)

// Feed streams ticks parsed from a CSV file
type Feed struct {
	data.Base
	Symbol   string
	FullPath string
}

// Load reads and parses the configured file into the replay stream
func (f *Feed) Load() error {
	fi, err := os.Open(f.FullPath)
	if err != nil {
		return fmt.Errorf("%w: could not read csv file %v: %v", common.ErrDataUnavailable, f.FullPath, err)
	}
	defer fi.Close()

	reader := csv.NewReader(fi)
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("%w: could not parse csv file %v: %v", common.ErrDataUnavailable, f.FullPath, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: csv file %v is empty", common.ErrDataUnavailable, f.FullPath)
	}

	stream := make([]tick.Event, 0, len(rows))
	for i := range rows {
		if i == 0 && isHeader(rows[i]) {
			continue
		}
		t, err := parseRow(f.Symbol, rows[i])
		if err != nil {
			return fmt.Errorf("%w: csv row %v: %v", common.ErrDataUnavailable, i+1, err)
		}
		stream = append(stream, t)
	}
	log.Feed.Infof("loaded %v ticks for %v from %v", len(stream), f.Symbol, f.FullPath)
	return f.SetStream(stream)
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := time.Parse(time.RFC3339, row[0])
	if err == nil {
		return false
	}
	_, err = time.Parse(time.DateOnly, row[0])
	return err != nil
}

func parseRow(symbol string, row []string) (*tick.Tick, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("expected 4 columns, have %v", len(row))
	}
	ts, err := time.Parse(time.RFC3339, row[0])
	if err != nil {
		ts, err = time.Parse(time.DateOnly, row[0])
		if err != nil {
			return nil, fmt.Errorf("could not parse timestamp %q: %v", row[0], err)
		}
	}
	open, err := decimal.NewFromString(row[1])
	if err != nil {
		return nil, fmt.Errorf("could not parse open %q: %v", row[1], err)
	}
	closePrice, err := decimal.NewFromString(row[2])
	if err != nil {
		return nil, fmt.Errorf("could not parse close %q: %v", row[2], err)
	}
	volume, err := decimal.NewFromString(row[3])
	if err != nil {
		return nil, fmt.Errorf("could not parse volume %q: %v", row[3], err)
	}
	return &tick.Tick{
		Base: event.Base{
			Time:   ts.UTC(),
			Symbol: symbol,
		},
		Open:   open,
		Close:  closePrice,
		Volume: volume,
	}, nil
}
