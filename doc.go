// Package stockfolio provides the functions and types for tracking stock
// holdings across multiple accounts. It is designed to be local-first: the
// portfolio lives in a single JSON file the user owns, and every report is
// recomputed from it rather than stored.
//
// The core functionalities include:
//   - Ledger Management: Recording buy and sell transactions per account in
//     an append-only record that is the single source of truth.
//   - Position Valuation: Aggregating the ledger into open positions with a
//     moving-average cost basis, enriched with market quotes on demand.
//   - Historical Reconstruction: Replaying the ledger against daily closing
//     prices to rebuild the portfolio value over a trailing window.
//   - Cash Bookkeeping: Mirroring every trade's cash effect on the owning
//     account with exact decimal arithmetic.
//   - Data Persistence: Encoding and decoding the portfolio to a
//     human-readable JSON format, including older single-account layouts,
//     and importing and exporting backups in JSON and CSV.
//
// This package serves as the foundational logic for the `folio` command-line
// tool.
package stockfolio
