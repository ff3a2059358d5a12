// Package tablefile reads and writes Cutter tables as plain files.
//
// The format follows the file extension:
//
//	.json  {"smith": "655", "smith,j.": "663"}
//	.toml  smith = '655'
//	.csv   prefix,digits rows; an optional "prefix,digits" header and
//	       lines starting with # are skipped
//
// Digits are strings so leading zeros survive; JSON and TOML integers are
// accepted and formatted in base 10.
package tablefile
