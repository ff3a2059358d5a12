// Package punctuation validates the punctuation between subfields of a
// bibliographic field against a JSON rule pack.
//
// A rule pack is a JSON object keyed by "TAG$c" (TAG is three digits or
// "*" for any tag, c is a subfield code):
//
//	{
//	  "name": "ISBD core",
//	  "245$a": {"suffix": ".", "only_last": true, "must_be_first": true},
//	  "245$b": {"preceded_by": " :", "repeatable": false},
//	  "*$6":   {"disabled": true}
//	}
//
// LoadRules merges an options overlay of the same shape over the pack and
// compiles the result into an immutable domain.RuleSet. A Validator then
// applies the set to one field at a time, returning findings and recording
// structural anomalies in its own warning log.
package punctuation
