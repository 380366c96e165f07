// Package pathtree reconstructs a hierarchy from flat, slash-delimited
// resource paths and renders it as compact nested text.
//
// # Overview
//
// Input is a list of [Record] values, each a raw percent-encoded path such
// as "/languages/C%2FC++/applications/linux" plus ordered string attributes.
// The pipeline has four stages:
//
//   - [Decode] splits a raw path into decoded segments ("%2F" becomes a
//     literal '/' inside one segment)
//   - [Builder.Build] inserts every record into a shared tree, merging
//     attributes of records that land on the same node (last write wins)
//   - [Compress] derives a read-only view in which chains of attribute-free,
//     single-child nodes collapse into one dotted label
//   - [Renderer.Render] prints the view with sorted siblings and two-space
//     indentation
//
// # Quick Start
//
//	recs := []pathtree.Record{
//	    {Path: "/languages/rust", Attributes: pathtree.NewAttributes("GC", "no")},
//	    {Path: "/languages/rust/applications/restcli", Attributes: pathtree.NewAttributes("category", "utility")},
//	}
//	out, err := pathtree.Format(recs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(out)
//
// prints
//
//	.languages.rust:
//	  GC no
//	  .applications.restcli:
//	    category utility
//
// # Errors
//
// A malformed path (empty, relative, containing "//", or with a bad "%XX"
// sequence) aborts the whole build; no partial tree is returned. Use
// [errors.As] with *rcerrors.MalformedPathError to get the offending path
// and segment.
//
// # Determinism
//
// For a given record sequence the tree, its compressed view and the
// rendered text are always identical. Sibling order uses byte-wise string
// comparison, never locale collation.
package pathtree
