package peer

import "go.dedis.ch/sharerecovery/types"

// Recoverer reconstructs secrets from threshold share sets.
type Recoverer interface {
	// Recover interpolates the first set.K shares of an already loaded set.
	// The set is expected to be sorted, see types.ShareSet.SortByX.
	Recover(set types.ShareSet) (types.Recovery, error)

	// RecoverDocument parses a JSON share document and recovers its secret.
	// source labels the result.
	RecoverDocument(source string, data []byte) (types.Recovery, error)

	// RecoverFile loads the share document at path and recovers its secret.
	RecoverFile(path string) (types.Recovery, error)

	// RecoverBatch recovers independent share files in parallel. The result
	// at index i belongs to paths[i]; failures are reported in Recovery.Err.
	RecoverBatch(paths []string) []types.Recovery

	// Results returns the successful recoveries kept so far.
	Results() []types.Recovery
}
