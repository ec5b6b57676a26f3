package portfolio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/etnz/smartportfolio/date"
	"github.com/shopspring/decimal"
)

// This file contains the backup document: the single text file holding the
// whole state of a portfolio. It looks like:
//
//	SmartPortfolio_Backup_v1
//	[HOLDINGS]
//	name,shares,avgPrice,currentPrice,type
//	"元大台灣50",22000,62.35,63.65,Stock
//
//	[DIVIDENDS]
//	id,date,stockName,amount
//	"4f0c...",2025-01-15,"元大台灣50",11000
//
// Only the inputs of a holding are persisted. Cost, current value, profit and
// return are recomputed on decode as if Shares had just been edited. A value
// reached through a direct Cost or CurrentValue override is therefore not
// restored by a save/load cycle: the load recomputes it from the stored prices.
// From then on a save/load cycle is stable.

const (
	backupVersion    = "SmartPortfolio_Backup_v1"
	holdingsSection  = "[HOLDINGS]"
	dividendsSection = "[DIVIDENDS]"
	holdingsHeader   = "name,shares,avgPrice,currentPrice,type"
	dividendsHeader  = "id,date,stockName,amount"

	holdingColumns  = 5
	dividendColumns = 4
)

// ErrEmptyBackup is returned by callers loading a document that yields
// neither holdings nor dividends.
var ErrEmptyBackup = errors.New("backup contains no holdings and no dividends")

// ErrUnknownHolding is returned when a holding name is not in the backup.
var ErrUnknownHolding = errors.New("unknown holding")

// Backup is a snapshot of the whole portfolio state. Methods never modify the
// receiver, they return a new snapshot.
type Backup struct {
	Holdings  []Holding
	Dividends []DividendRecord
}

// IsEmpty reports whether the backup has neither holdings nor dividends.
func (b *Backup) IsEmpty() bool { return len(b.Holdings) == 0 && len(b.Dividends) == 0 }

// Holding returns the holding called name.
func (b *Backup) Holding(name string) (Holding, bool) {
	i := slices.IndexFunc(b.Holdings, func(h Holding) bool { return h.Name == name })
	if i < 0 {
		return Holding{}, false
	}
	return b.Holdings[i], true
}

// HoldingNames lists holding names in portfolio order.
func (b *Backup) HoldingNames() []string {
	names := make([]string, 0, len(b.Holdings))
	for _, h := range b.Holdings {
		names = append(names, h.Name)
	}
	return names
}

// Edit returns a new backup where the holding called name has field set to
// value, see Recalculate.
func (b *Backup) Edit(name string, field Field, value decimal.Decimal) (*Backup, error) {
	i := slices.IndexFunc(b.Holdings, func(h Holding) bool { return h.Name == name })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHolding, name)
	}
	holdings := slices.Clone(b.Holdings)
	holdings[i] = Recalculate(holdings[i], field, value)
	return &Backup{Holdings: holdings, Dividends: b.Dividends}, nil
}

// AddDividend returns a new backup with rec appended to the dividend history.
func (b *Backup) AddDividend(rec DividendRecord) *Backup {
	dividends := append(slices.Clip(b.Dividends), rec)
	return &Backup{Holdings: b.Holdings, Dividends: dividends}
}

// EncodeBackup writes b as a backup document. The output is deterministic:
// holdings and dividends keep their order.
func EncodeBackup(w io.Writer, b *Backup) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, backupVersion)
	fmt.Fprintln(bw, holdingsSection)
	fmt.Fprintln(bw, holdingsHeader)
	for _, h := range b.Holdings {
		fmt.Fprintf(bw, "%s,%s,%s,%s,%s\n",
			quote(h.Name), h.Shares, h.AvgCostPrice.Plain(), h.CurrentMarketPrice.Plain(), h.Class)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, dividendsSection)
	fmt.Fprintln(bw, dividendsHeader)
	for _, d := range b.Dividends {
		fmt.Fprintf(bw, "%s,%s,%s,%s\n",
			quote(d.ID), d.Date, quote(d.StockName), d.Amount.Plain())
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("persist error: cannot write backup: %w", err)
	}
	return nil
}

// DecodeBackup reads a backup document.
//
// Decoding is lenient: the version line and header rows are skipped, rows
// outside a known section, rows with too few columns and rows with
// unparseable numbers or dates are dropped. Unknown section markers leave the
// current section unchanged. Asset class tags are taken as written.
// Only read errors are returned.
func DecodeBackup(r io.Reader) (*Backup, error) {
	b := &Backup{}
	section := ""

	err := eachLine(r, func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}

		switch {
		case line == holdingsSection, line == dividendsSection:
			section = line
			return
		case strings.HasPrefix(line, "["):
			// unknown section marker
			return
		case strings.HasPrefix(line, backupVersion), strings.HasPrefix(line, holdingsHeader), strings.HasPrefix(line, dividendsHeader):
			return
		}

		fields := splitFields(line)
		switch section {
		case holdingsSection:
			if h, ok := decodeHolding(fields); ok {
				b.Holdings = append(b.Holdings, h)
			}
		case dividendsSection:
			if d, ok := decodeDividend(fields); ok {
				b.Dividends = append(b.Dividends, d)
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("load error: cannot read backup: %w", err)
	}
	return b, nil
}

func decodeHolding(fields []string) (Holding, bool) {
	if len(fields) < holdingColumns {
		return Holding{}, false
	}
	shares, err1 := decimal.NewFromString(strings.TrimSpace(fields[1]))
	avg, err2 := decimal.NewFromString(strings.TrimSpace(fields[2]))
	price, err3 := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err := errors.Join(err1, err2, err3); err != nil {
		return Holding{}, false
	}
	class := AssetClass(strings.TrimSpace(fields[4]))
	return NewHolding(fields[0], class, Q(shares), TWD(avg), TWD(price)), true
}

func decodeDividend(fields []string) (DividendRecord, bool) {
	if len(fields) < dividendColumns {
		return DividendRecord{}, false
	}
	on, err1 := date.Parse(fields[1])
	amount, err2 := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err := errors.Join(err1, err2); err != nil {
		return DividendRecord{}, false
	}
	return DividendRecord{
		ID:        fields[0],
		Date:      on,
		StockName: fields[2],
		Amount:    TWD(amount),
	}, true
}
