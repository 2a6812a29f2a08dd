package main

import (
	"sync/atomic"
)

// apiMetrics counts work done since boot. Plain atomics; searches share no
// other state across requests.
type apiMetrics struct {
	mineRequests atomic.Uint64
	mineMatches  atomic.Uint64
	hashesTried  atomic.Uint64
	hashRequests atomic.Uint64
	badRequests  atomic.Uint64
}

type metricsSnapshot struct {
	MineRequests uint64 `json:"mine_requests"`
	MineMatches  uint64 `json:"mine_matches"`
	HashesTried  uint64 `json:"hashes_tried"`
	HashRequests uint64 `json:"hash_requests"`
	BadRequests  uint64 `json:"bad_requests"`
}

func (m *apiMetrics) recordMine(res MineResult) {
	m.mineRequests.Add(1)
	if res.TriedHashes > 0 {
		m.hashesTried.Add(uint64(res.TriedHashes))
	}
	if res.Found {
		m.mineMatches.Add(1)
	}
}

func (m *apiMetrics) snapshot() metricsSnapshot {
	return metricsSnapshot{
		MineRequests: m.mineRequests.Load(),
		MineMatches:  m.mineMatches.Load(),
		HashesTried:  m.hashesTried.Load(),
		HashRequests: m.hashRequests.Load(),
		BadRequests:  m.badRequests.Load(),
	}
}
