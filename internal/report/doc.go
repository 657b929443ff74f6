// Package report renders spot-check results.
//
// Three formatters are provided: a human-readable text report with a
// trailing summary table, a JSON document for downstream tooling, and the
// dry-run listing of extracted passages. Formatters never change the
// severities they are given.
package report
