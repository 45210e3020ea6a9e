// Package diagnostic collects errors, warnings and infos produced while
// validating schema files, with "did you mean" suggestions attached.
package diagnostic
