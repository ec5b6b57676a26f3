package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	portfolio "github.com/etnz/smartportfolio"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variables read when the matching global flag is not set.
const (
	EnvBackupFile      = "SPF_BACKUP_FILE"
	EnvTotalAssetsGoal = "SPF_TOTAL_ASSETS_GOAL"
	EnvInvestedGoal    = "SPF_INVESTED_GOAL"
	EnvCashReserveGoal = "SPF_CASH_RESERVE_GOAL"
	EnvStockRatio      = "SPF_STOCK_RATIO"
	EnvBondRatio       = "SPF_BOND_RATIO"
	EnvVerbose         = "SPF_VERBOSE"
)

// Config is the resolved configuration of a run.
type Config struct {
	BackupFile string
	Target     portfolio.PortfolioTarget
	Verbose    bool
}

// globalFlags are the flags shared by every subcommand.
type globalFlags struct {
	fs              *flag.FlagSet
	backupFile      *string
	totalAssetsGoal *string
	investedGoal    *string
	cashReserveGoal *string
	stockRatio      *string
	bondRatio       *string
	verbose         *bool
}

func newGlobalFlags(fs *flag.FlagSet) *globalFlags {
	t := portfolio.DefaultTarget()
	return &globalFlags{
		fs:              fs,
		backupFile:      fs.String("backup-file", "portfolio.txt", "Path to the backup file holding the portfolio (env "+EnvBackupFile+")"),
		totalAssetsGoal: fs.String("total-assets-goal", t.TotalAssetsGoal.Plain(), "Total assets, holdings plus cash (env "+EnvTotalAssetsGoal+")"),
		investedGoal:    fs.String("invested-goal", t.InvestedGoal.Plain(), "Amount to keep invested in stocks and bonds (env "+EnvInvestedGoal+")"),
		cashReserveGoal: fs.String("cash-reserve-goal", t.CashReserveGoal.Plain(), "Emergency cash reserve (env "+EnvCashReserveGoal+")"),
		stockRatio:      fs.String("stock-ratio", strconv.FormatFloat(t.StockRatio, 'f', -1, 64), "Target share of stocks in the invested goal (env "+EnvStockRatio+")"),
		bondRatio:       fs.String("bond-ratio", strconv.FormatFloat(t.BondRatio, 'f', -1, 64), "Target share of bonds in the invested goal (env "+EnvBondRatio+")"),
		verbose:         fs.Bool("v", false, "Enable verbose logging (env "+EnvVerbose+")"),
	}
}

var globals = newGlobalFlags(flag.CommandLine)

// settings is the configuration of the run, resolved on first use.
var settings *Config

// config returns the configuration of the run.
func config() (*Config, error) {
	if settings != nil {
		return settings, nil
	}
	cfg, err := globals.resolve()
	if err != nil {
		return nil, err
	}
	settings = cfg
	setVerbose(cfg.Verbose)
	return settings, nil
}

// resolve computes the configuration: flags set on the command line first,
// then environment variables, possibly from a .env file, then defaults.
func (g *globalFlags) resolve() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env: %w", err)
	}

	set := make(map[string]bool)
	g.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	value := func(name, env string) string {
		if v := os.Getenv(env); !set[name] && v != "" {
			return v
		}
		return g.fs.Lookup(name).Value.String()
	}

	var errs []error
	amount := func(name, env string) portfolio.Money {
		d, err := decimal.NewFromString(value(name, env))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid -%s: %w", name, err))
		}
		return portfolio.TWD(d)
	}
	ratio := func(name, env string) float64 {
		r, err := strconv.ParseFloat(value(name, env), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid -%s: %w", name, err))
		}
		return r
	}

	cfg := &Config{
		BackupFile: value("backup-file", EnvBackupFile),
		Target: portfolio.PortfolioTarget{
			TotalAssetsGoal: amount("total-assets-goal", EnvTotalAssetsGoal),
			InvestedGoal:    amount("invested-goal", EnvInvestedGoal),
			CashReserveGoal: amount("cash-reserve-goal", EnvCashReserveGoal),
			StockRatio:      ratio("stock-ratio", EnvStockRatio),
			BondRatio:       ratio("bond-ratio", EnvBondRatio),
		},
	}
	verbose, err := strconv.ParseBool(value("v", EnvVerbose))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid %s: %w", EnvVerbose, err))
	}
	cfg.Verbose = verbose

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}
