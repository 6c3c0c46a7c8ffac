// Package report renders categorization outcomes. It includes:
//   - an append-mode text report pairing each test vector with its
//     predicted/correct tags and the retrieved neighbor vectors
//   - a SQLite results sink storing one row per test word, with the count
//     vector encoded as a BLOB and a pos_cosine SQL scalar so finished runs
//     can be inspected by similarity directly in SQL
//
// Nothing here is read back by the categorization pipeline; the sink is a
// diagnostic output, not a persistence layer.
package report
