// Package finbook is a personal finance ledger with a deterministic
// aggregation engine.
//
// The Ledger owns seven collections (transactions, budgets, accounts,
// assets, debts, savings goals, payment reminders) behind one lock, and is
// periodically serialized as a whole Snapshot through a SnapshotStore with
// atomic write-replace semantics. Every derived value (period totals,
// budget consumption, category distribution, trend series, spending
// forecast, net worth) is a pure function of a Snapshot plus an explicit
// "now", recomputed on demand rather than cached.
//
// Calendar arithmetic runs on day-granularity Date values and Period
// windows (day, ISO week, month, quarter, year); all windows are closed
// intervals.
package finbook
