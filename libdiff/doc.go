// Package libdiff computes structural differences between two tag trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldRoot, newRoot)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
// Compounds are compared key by key. Lists are aligned with a sequence
// diff over element hashes, so an insertion in the middle of a list shows
// as one insertion rather than a change to every later element. Lists of
// compounds carrying an identifying field, such as the entries written by
// package indexed, can instead be matched by that field with DiffByKey.
//
// # Related Packages
//
//   - github.com/signadot/tagtree/tag - tree representation
//   - github.com/signadot/tagtree/indexed - indexed entry lists
package libdiff
