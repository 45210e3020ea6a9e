// Package mapper builds model objects from loosely keyed input records.
//
// Each attribute of a class may declare a From source. Construction runs
// the remapping engine over a private copy of the input:
//
//  1. Renames: for every RenameFrom(key) attribute whose own name is not
//     already a key of the record, the value under key is moved to the
//     attribute name. A literal key under the attribute name wins and the
//     rename source is left in place.
//  2. Computes: every ComputeFrom(fn) attribute is set to fn(record), in
//     declaration order, overwriting any value. fn sees the record after
//     step 1 and the results of earlier computes.
//  3. Nil pruning: keys holding nil are removed unless the input held an
//     explicit nil under that key, so absent attributes fall through to
//     their defaults while explicit nils survive.
//
// The resulting canonical record is assigned to a model.Object.
//
// An Instance keeps its input and the set of keys that were nil in it.
// Extend merges more attributes into an instance-owned copy of the class
// schema, remaps the original input and assigns only the new attributes.
// The class schema is never modified.
//
// Instances are not safe for concurrent use. Classes are read-only after
// NewClass and may be shared.
package mapper
