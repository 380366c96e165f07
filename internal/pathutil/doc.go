// Package pathutil provides small path helpers shared by the tree
// compressor and the CLI.
//
// [PathBuilder] builds a dotted label incrementally while a compression
// chain is followed; [Get] and [Put] manage a pool of builders:
//
//	label := pathutil.Get()
//	defer pathutil.Put(label)
//
//	label.Push("applications")
//	label.Push("restcli")
//	label.String() // "applications.restcli"
//
// [OutputPath] validates an output file path before the CLI writes a
// rendering to it.
package pathutil
