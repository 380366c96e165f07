// Package restcli rebuilds hierarchies from flat, percent-encoded resource
// paths and renders them as compact nested text.
//
// A REST inventory often arrives as a flat map from resource path to
// attributes:
//
//	/languages/go:
//	  GC: yes
//	/languages/go/applications/etcd:
//	  category: database
//
// restcli turns that into a tree, collapses chains of attribute-free nodes
// with a single child, and prints it:
//
//	.languages.go:
//	  GC yes
//	  .applications.etcd:
//	    category database
//
// # Packages
//
//   - pathtree: decode raw paths, build the tree, compress chains, render text
//   - records: load path/attribute records from YAML or JSON documents,
//     optionally located inside a larger response with a JSONPath selector
//   - rcerrors: sentinel and structured error types shared by all packages
//
// # Quick Start
//
// Render a document from disk:
//
//	import (
//		"github.com/erraggy/restcli/pathtree"
//		"github.com/erraggy/restcli/records"
//	)
//
//	res, err := records.Load("survey.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := pathtree.Format(res.Records)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out)
//
// Records nested in an API response are selected with a JSONPath:
//
//	res, err := records.LoadWithOptions(
//		records.WithFilePath("response.json"),
//		records.WithSelector("$.data.records"),
//	)
//
// # Command-Line Interface
//
// The restcli binary wraps the library:
//
//	restcli render survey.yaml
//	restcli render -prefix /languages/go -color always survey.yaml
//	restcli paths -format json survey.yaml
//	restcli diff old.yaml new.yaml
//	restcli mcp
//
// Defaults for every command come from RESTCLI_* environment variables,
// optionally read from a .env file in the working directory.
//
// # Version
//
// Version, Commit and BuildTime report build metadata set via ldflags.
package restcli
