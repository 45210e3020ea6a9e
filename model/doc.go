// Package model implements the typed-attribute object model that consumes
// remapped records.
//
// A class is described by an AttributeSet: an ordered list of Attribute
// declarations, unique by name. Each declaration carries a Type used for
// coercion, an optional Default, a Required flag and an optional From
// source (see RenameFrom and ComputeFrom) that the mapper package reads.
//
// An Object holds the values of one instance. Bulk assignment applies
// defaults for absent keys, reports absent required attributes with
// ErrRequiredAttributeMissing, and keeps explicit nils as nil. Reading or
// writing an undeclared name fails with ErrUnknownAttribute.
package model
