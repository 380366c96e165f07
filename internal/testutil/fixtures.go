// Package testutil provides fixtures and helpers shared by unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SurveyYAML is a small survey of languages and the applications written in
// them, keyed by percent-encoded resource path.
const SurveyYAML = `/languages/rust:
  GC: no
/languages/rust/applications/restcli:
  category: ultility
/languages/go:
  GC: yes
/languages/go/applications/etcd:
  category: database
/languages/go/applications/kubernetes:
  company: Google
/languages/C%2FC++:
  GC: no
/languages/C%2FC++/applications/linux:
  category: kernel
/languages/C%2FC++/applications/ceph:
  category: file-system
`

// SurveyJSON holds the same survey nested under a response envelope, with
// boolean GC flags, for selector tests.
const SurveyJSON = `{
  "status": "ok",
  "data": {
    "records": {
      "/languages/rust": {"GC": false},
      "/languages/rust/applications/restcli": {"category": "ultility"},
      "/languages/go": {"GC": true},
      "/languages/go/applications/etcd": {"category": "database"},
      "/languages/go/applications/kubernetes": {"company": "Google"},
      "/languages/C%2FC++": {"GC": false},
      "/languages/C%2FC++/applications/linux": {"category": "kernel"},
      "/languages/C%2FC++/applications/ceph": {"category": "file-system"}
    }
  }
}`

// SurveyOutput is the rendering of the survey.
const SurveyOutput = `.languages:
  .C/C++:
    GC no
    .applications:
      .ceph:
        category file-system
      .linux:
        category kernel
  .go:
    GC yes
    .applications:
      .etcd:
        category database
      .kubernetes:
        company Google
  .rust:
    GC no
    .applications.restcli:
      category ultility
`

// WriteTempFile writes content to name inside a per-test temporary
// directory and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
