// Package clickhouse loads historical candles from a ClickHouse table of
// the shape (timestamp DateTime, symbol String, interval String,
// open/close/volume Float64)
package clickhouse

import (
	"context"
	"fmt"
	"time"

	clickhouse "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/allaccountstaken/robo-advisors/log"
	"github.com/shopspring/decimal"
)

// Feed streams ticks queried from a ClickHouse candle table
type Feed struct {
	data.Base
	Symbol    string
	Addr      string
	Database  string
	Table     string
	Username  string
	Password  string
	Interval  string
	StartDate time.Time
	EndDate   time.Time
}

// Load connects, queries the configured range and takes the result on as
// the replay stream
func (f *Feed) Load() error {
	ctx := context.Background()
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{f.Addr},
		Auth: clickhouse.Auth{
			Database: f.Database,
			Username: f.Username,
			Password: f.Password,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: clickhouse open: %v", common.ErrDataUnavailable, err)
	}
	defer conn.Close()
	if err := conn.Ping(ctx); err != nil {
		return fmt.Errorf("%w: clickhouse ping: %v", common.ErrDataUnavailable, err)
	}

	query := fmt.Sprintf(
		"SELECT timestamp, open, close, volume FROM %s.%s WHERE symbol = ? AND interval = ? AND timestamp >= ? AND timestamp <= ? ORDER BY timestamp",
		f.Database, f.Table)
	rows, err := conn.Query(ctx, query, f.Symbol, f.Interval, f.StartDate, f.EndDate)
	if err != nil {
		return fmt.Errorf("%w: clickhouse query: %v", common.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var stream []tick.Event
	for rows.Next() {
		var (
			ts                    time.Time
			open, closePrice, vol float64
		)
		if err := rows.Scan(&ts, &open, &closePrice, &vol); err != nil {
			return fmt.Errorf("%w: clickhouse scan: %v", common.ErrDataUnavailable, err)
		}
		stream = append(stream, &tick.Tick{
			Base: event.Base{
				Time:   ts.UTC(),
				Symbol: f.Symbol,
			},
			Open:   decimal.NewFromFloat(open),
			Close:  decimal.NewFromFloat(closePrice),
			Volume: decimal.NewFromFloat(vol),
		})
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: clickhouse rows: %v", common.ErrDataUnavailable, err)
	}
	if len(stream) == 0 {
		return fmt.Errorf("%w: no candles for %v between %v and %v",
			common.ErrDataUnavailable,
			f.Symbol,
			f.StartDate.Format(time.DateOnly),
			f.EndDate.Format(time.DateOnly))
	}
	log.Feed.Infof("loaded %v ticks for %v from %v.%v", len(stream), f.Symbol, f.Database, f.Table)
	return f.SetStream(stream)
}
