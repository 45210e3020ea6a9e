// Package mapping provides the YAML schema file for mapped classes:
// parsing, validation, the compute registry, and building mapper classes.
//
// # Schema Overview
//
// The schema file has the following structure:
//
//	version: "1"
//	classes:
//	  - name: Person
//	    strict: false             # coercion failures are errors when true
//	    fold: ident               # key comparison: none | case | ident
//	    attributes:
//	      - name: first_name
//	        type: string
//	      - name: last_name
//	        type: string
//	        from: surname         # rename: read "surname", drop it
//	      - name: address
//	        type: string
//	        default: ""
//	        from:
//	          path: address.street   # compute: look up a nested value
//	      - name: full_name
//	        from:
//	          compute: FullName      # compute: registered function
//	      - name: age
//	        type: integer
//	        required: true
//
// # From
//
// A scalar "from" is a rename key. A mapping takes exactly one of:
//   - key: rename key, same as the scalar form
//   - path: dotted lookup into the raw record ("phones.0.number");
//     a missing path computes nil, so the default applies
//   - compute: name of a function in the ComputeRegistry
//
// # Types
//
// any (default), string, integer/int, float, boolean/bool, time,
// map/hash, slice/array.
package mapping
