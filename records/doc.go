// Package records loads path/attribute records from YAML or JSON documents.
//
// A document maps raw, percent-encoded resource paths to attribute
// mappings:
//
//	/languages/go:
//	  GC: true
//	  maintainers: [google, community]
//	/languages/go/applications/etcd:
//	  category: database
//	  limits:
//	    cpu: 2
//
// Attribute values are converted to strings. Booleans become configurable
// words ("yes"/"no" by default), null becomes an empty value, lists of
// scalars are joined with ", " and nested mappings are flattened into
// dotted keys, so the example above yields the attributes
// "maintainers: google, community" and "limits.cpu: 2".
//
// # Selectors
//
// When the records are nested inside a larger response, [WithSelector]
// takes a JSONPath expression (for example "$.data.records") locating the
// record mapping. Selected documents are decoded without order
// information, so their records and keys are sorted byte-wise.
//
// # Errors
//
// Structural problems such as a non-mapping top level or a record whose
// value is a list are reported as *rcerrors.LoadError with the line and
// column when known. Paths are not validated here; pass the records to
// pathtree to decode them.
package records
