package models

// StockRecord is one estoque line. The stock sheet has no fixed schema, so
// every source column is preserved verbatim, in source order.
type StockRecord = SheetRow
