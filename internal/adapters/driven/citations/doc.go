// Package citations builds the citation term set from a document's
// WORKS_CITED.md. Terms are author surnames and organisation names from bold
// entries, italic titles, and bare site domains, all lower-cased.
package citations
