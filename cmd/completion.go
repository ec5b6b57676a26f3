package cmd

import (
	portfolio "github.com/etnz/smartportfolio"
	"github.com/etnz/smartportfolio/date"
	"github.com/etnz/smartportfolio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictHoldings completes holding names from the backup file.
var predictHoldings = complete.PredictFunc(func(prefix string) []string {
	cfg, err := globals.resolve()
	if err != nil || !exists(cfg.BackupFile) {
		return nil
	}
	b, err := loadBackup(cfg.BackupFile)
	if err != nil {
		return nil
	}
	return b.HoldingNames()
})

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	fields := make(predict.Set, 0, len(portfolio.Fields))
	for _, f := range portfolio.Fields {
		fields = append(fields, f.String())
	}
	topics, _ := docs.GetAllTopics()
	names := make(predict.Set, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	periods := make(predict.Set, 0, len(date.Periods))
	for _, p := range date.Periods {
		periods = append(periods, p.Noun())
	}
	dates := predict.Set{"today", "-1d", "-1w", "-1m"}
	backups := predict.Files("*.txt")

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"init":     {Flags: map[string]complete.Predictor{"f": predict.Files("*.csv"), "force": predict.Nothing}},
			"summary":  {},
			"holdings": {},
			"edit": {Flags: map[string]complete.Predictor{
				"name":  predictHoldings,
				"field": fields,
				"value": predict.Something,
			}},
			"dividend": {Flags: map[string]complete.Predictor{
				"name":   predictHoldings,
				"amount": predict.Something,
				"d":      dates,
			}},
			"dividends": {Flags: map[string]complete.Predictor{
				"p":      periods,
				"d":      dates,
				"recent": predict.Something,
			}},
			"export":    {Flags: map[string]complete.Predictor{"o": backups}},
			"import":    {Flags: map[string]complete.Predictor{"f": backups}},
			"fmt":       {},
			"topic":     {Args: append(predict.Set{"*"}, topics...)},
			"help":      {Args: names},
			"flags":     {},
			"commands":  {},
		},
		Flags: map[string]complete.Predictor{
			"backup-file":       backups,
			"total-assets-goal": predict.Something,
			"invested-goal":     predict.Something,
			"cash-reserve-goal": predict.Something,
			"stock-ratio":       predict.Something,
			"bond-ratio":        predict.Something,
			"v":                 predict.Nothing,
		},
	}
}
