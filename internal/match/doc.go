// Package match provides identifier normalization and Levenshtein-based
// suggestions for attribute and key names.
//
// Key functions:
//   - NormalizeIdent: folds identifiers so "first_name", "FirstName" and
//     "first-name" compare equal
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names against an unknown one ("did you mean")
package match
