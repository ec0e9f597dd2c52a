// Package scene is the in-memory animation scene graph: files,
// compositions, layers and everything a layer owns.
//
// The graph is built once by a decoder (see package scenefile) and is
// read-only afterwards. Nodes are owned top-down by their File.
// References across the tree are non-owning: a layer names its parent
// and track matte by ID, and a pre-compose layer points at a composition
// that lives in File.Compositions.
//
// Every node implements Verify. File.Check walks the whole graph and
// reports the first malformed node as an *anim.VerifyError.
//
// Composition.StaticTimeRanges aggregates the varying ranges of every
// layer into the list of frames a renderer may reuse.
package scene
