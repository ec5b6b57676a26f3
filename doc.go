// Package portfolio tracks a personal stock and bond portfolio against fixed
// allocation targets.
//
// The package is a small, stateless financial engine:
//   - Fee and tax model: BuyCostFactor and SellValueFactor implement the
//     Taiwan brokerage schedule, where bonds pay no transaction tax.
//   - Recalculation: Recalculate keeps the fields of a Holding consistent
//     whichever single field was edited.
//   - Aggregation: Aggregate folds holdings into a Summary where cash is the
//     remainder of a fixed total assets figure.
//   - Rebalancing: Advise compares stock and bond values with their target
//     share of the invested goal.
//   - Persistence: EncodeBackup and DecodeBackup convert the whole state to and
//     from a two section text document. ImportBrokerExport reads the initial
//     holdings from a broker export.
//
// All functions take and return values. Callers own the state and replace it
// with the snapshots returned here.
//
// This package is the engine of the `spf` command-line tool.
package portfolio
