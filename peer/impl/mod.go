package impl

import (
	"sync"

	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"go.dedis.ch/sharerecovery/peer"
	"go.dedis.ch/sharerecovery/peer/impl/interpolation"
	"go.dedis.ch/sharerecovery/peer/impl/loader"
	"go.dedis.ch/sharerecovery/types"
)

const inlineSource = "inline"

// NewRecoverer creates a new recoverer with the given configuration.
func NewRecoverer(conf peer.Configuration) peer.Recoverer {
	n := node{
		conf:    conf,
		results: NewSafeResultTable(),
	}
	return &n
}

// node implements a recoverer
//
// - implements peer.Recoverer
type node struct {
	peer.Recoverer
	conf peer.Configuration

	results *SafeResultTable
}

// Recover implements peer.Recoverer
func (n *node) Recover(set types.ShareSet) (types.Recovery, error) {
	return n.recover(inlineSource, set)
}

// RecoverDocument implements peer.Recoverer
func (n *node) RecoverDocument(source string, data []byte) (types.Recovery, error) {
	set, err := loader.Parse(data, n.conf)
	if err != nil {
		return n.fail(source, err)
	}
	return n.recover(source, set)
}

// RecoverFile implements peer.Recoverer
func (n *node) RecoverFile(path string) (types.Recovery, error) {
	set, err := loader.Load(path, n.conf)
	if err != nil {
		return n.fail(path, err)
	}
	return n.recover(path, set)
}

// RecoverBatch implements peer.Recoverer
func (n *node) RecoverBatch(paths []string) []types.Recovery {
	results := make([]types.Recovery, len(paths))

	workers := n.conf.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan int)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx], _ = n.RecoverFile(paths[idx])
			}
		}()
	}

	for idx := range paths {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// Results implements peer.Recoverer
func (n *node) Results() []types.Recovery {
	return n.results.getAll()
}

func (n *node) recover(source string, set types.ShareSet) (types.Recovery, error) {
	rec := types.Recovery{
		ID:          xid.New().String(),
		Source:      source,
		Fingerprint: set.Fingerprint(set.K),
		K:           set.K,
	}

	if n.conf.MaxThreshold > 0 && set.K > n.conf.MaxThreshold {
		rec.Err = &loader.InputError{Field: "keys.k", Reason: "threshold exceeds the configured maximum"}
		return rec, rec.Err
	}

	if n.conf.Cache {
		cached, ok := n.results.get(rec.Fingerprint)
		if ok {
			rec.Secret = cached.Secret
			rec.Cached = true
			log.Debug().Msgf("%s: %s served from cache (%s)", rec.ID, source, rec.Fingerprint)
			return rec, nil
		}
	}

	log.Info().Msgf("%s: interpolating %d of %d shares from %s", rec.ID, set.K, len(set.Shares), source)

	secret, err := interpolation.SecretAtZero(set.Shares, set.K)
	if err != nil {
		rec.Err = err
		log.Warn().Err(err).Msgf("%s: recovery of %s failed (%s)", rec.ID, source, ErrorKind(err))
		return rec, err
	}
	rec.Secret = secret

	if n.conf.Cache {
		n.results.add(rec.Fingerprint, rec)
	}

	return rec, nil
}

func (n *node) fail(source string, err error) (types.Recovery, error) {
	rec := types.Recovery{
		ID:     xid.New().String(),
		Source: source,
		Err:    err,
	}
	log.Warn().Err(err).Msgf("%s: failed to load %s (%s)", rec.ID, source, ErrorKind(err))
	return rec, err
}
