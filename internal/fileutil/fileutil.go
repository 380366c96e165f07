// Package fileutil holds file permission constants shared by commands that
// write output files.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for rendered output files.
// Rendered inventories may describe internal systems, so only the owner
// can read them.
const OwnerReadWrite os.FileMode = 0o600
