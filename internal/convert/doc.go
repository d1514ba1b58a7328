// Package convert holds the conversion policy between the catalog's
// cards.json data file and the spreadsheet operators edit by hand.
//
// The importer maps header columns by name, transforms each data row into a
// card, drops repeated titles and validates classification fields. Findings
// on individual fields are advisory: they are collected as warnings and the
// card is still written. Structural problems (missing input, unreadable
// workbook, too many rows, missing columns, unwritable output) abort the run
// before anything is written.
//
// The exporter flattens every record of the data file into a fixed-column
// row and writes a single-sheet workbook.
package convert
