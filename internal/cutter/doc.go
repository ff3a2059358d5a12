// Package cutter generates the Cutter component of a call number.
//
// Generation is a two stage pipeline:
//
//   - Parse splits a raw field value into name parts using a policy chosen
//     by the source field tag.
//   - Generator looks the parts up in an alphabetic CutterTable, probing
//     "surname,i." keys from the given-name initial down to "a" and then
//     ever shorter surname prefixes.
//
// Both stages are pure. A Generator never mutates its table and may be
// shared between goroutines.
package cutter
