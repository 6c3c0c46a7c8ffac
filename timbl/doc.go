// Package timbl shells out to the TiMBL memory-based classifier so its
// categorization of the same training/test files can be compared against the
// kNN path, which never depends on TiMBL's output.
package timbl
