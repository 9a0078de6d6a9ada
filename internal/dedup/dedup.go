// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup collapses duplicate citations. A first pass groups exact
// duplicates by fingerprint and resolves each group to one survivor; a
// second pass compares survivors pairwise to catch near-duplicates whose
// fingerprints differ (e.g. a DOI extracted from one copy but not the
// other). Every removal is recorded in an append-only ledger.
package dedup

import (
	"fmt"
	"io"

	"github.com/mkaraca/citation-engine/internal/citation"
	"github.com/mkaraca/citation-engine/pkg/types"
)

// Result holds the deduplicated citations and the decision ledger for one
// analysis run.
type Result struct {
	// Citations is the surviving set, in input order subject to the
	// configured strategy's replacements.
	Citations []types.Citation

	// Ledger lists every (kept, removed, score) decision in the order it
	// was made.
	Ledger []types.DuplicateRecord

	// InputCount is the number of citations before deduplication.
	InputCount int
}

// Removed returns the number of citations dropped by the run.
func (r Result) Removed() int {
	return r.InputCount - len(r.Citations)
}

// DOIBased returns how many ledger decisions were justified by an exact
// DOI match, as opposed to textual similarity.
func (r Result) DOIBased() int {
	n := 0
	for _, rec := range r.Ledger {
		if rec.Kept.DOI != "" && rec.Kept.DOI == rec.Removed.DOI {
			n++
		}
	}
	return n
}

// Run deduplicates the citation sequence under cfg, logging progress to w.
// The input slice is not modified. Run fails only on invalid configuration;
// with detection disabled it passes the input through untouched.
func Run(citations []types.Citation, cfg types.AnalysisConfig, w io.Writer) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	result := Result{InputCount: len(citations)}

	if !cfg.EnableDuplicateDetection {
		result.Citations = append(result.Citations, citations...)
		return result, nil
	}

	fmt.Fprintf(w, "deduplicating %d citations (threshold %.2f, strategy %s)\n",
		len(citations), cfg.SimilarityThreshold, cfg.Strategy)

	// Exact pass: one survivor per fingerprint group.
	var survivors []types.Citation
	for _, group := range groupByFingerprint(citations) {
		if len(group) == 1 {
			survivors = append(survivors, group[0])
			continue
		}
		kept, records := resolveGroup(group, cfg.Strategy)
		survivors = append(survivors, kept)
		result.Ledger = append(result.Ledger, records...)
	}

	// Near pass: pairwise similarity over the survivors.
	accepted, records := sweepNear(survivors, cfg)
	result.Citations = accepted
	result.Ledger = append(result.Ledger, records...)

	fmt.Fprintf(w, "removed %d duplicates, %d citations remain\n",
		result.Removed(), len(result.Citations))

	return result, nil
}

// groupByFingerprint partitions citations into groups of equal fingerprint.
// Groups appear in order of their first member; members keep input order.
func groupByFingerprint(citations []types.Citation) [][]types.Citation {
	index := make(map[string]int, len(citations))
	var groups [][]types.Citation

	for _, c := range citations {
		if i, ok := index[c.Fingerprint]; ok {
			groups[i] = append(groups[i], c)
			continue
		}
		index[c.Fingerprint] = len(groups)
		groups = append(groups, []types.Citation{c})
	}
	return groups
}

// resolveGroup picks one survivor from a group of exact duplicates and
// records every other member as removed. Ties on length or DOI presence
// keep the earliest member.
func resolveGroup(group []types.Citation, strategy types.DuplicateStrategy) (types.Citation, []types.DuplicateRecord) {
	survivor := 0

	switch strategy {
	case types.KeepFirst:
		// survivor stays 0.

	case types.KeepLongest:
		for i, c := range group {
			if len(c.Text) > len(group[survivor].Text) {
				survivor = i
			}
		}

	case types.KeepMostComplete:
		survivor = mostComplete(group)
	}

	kept := group[survivor]
	var records []types.DuplicateRecord
	for i, c := range group {
		if i == survivor {
			continue
		}
		records = append(records, types.DuplicateRecord{
			Kept:    kept,
			Removed: c,
			Score:   citation.Score(kept, c),
		})
	}
	return kept, records
}

// mostComplete returns the index of the longest DOI-bearing member, or the
// longest member overall when none carries a DOI.
func mostComplete(group []types.Citation) int {
	best := -1
	for i, c := range group {
		if c.DOI == "" {
			continue
		}
		if best < 0 || len(c.Text) > len(group[best].Text) {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	for i, c := range group {
		if best < 0 || len(c.Text) > len(group[best].Text) {
			best = i
		}
	}
	return best
}

// sweepNear runs the incremental accept/replace pass over the survivors.
// Each candidate is scored against every accepted citation; at or above
// the threshold it is folded into that cluster, with the strategy deciding
// whether it replaces the accepted representative. Replacement is an
// index-based in-place update so the accepted list always holds exactly
// one representative per cluster.
func sweepNear(survivors []types.Citation, cfg types.AnalysisConfig) ([]types.Citation, []types.DuplicateRecord) {
	var accepted []types.Citation
	var records []types.DuplicateRecord

	for _, cand := range survivors {
		matched := -1
		var score float64
		for i, acc := range accepted {
			if s := citation.Score(cand, acc); s >= cfg.SimilarityThreshold {
				matched, score = i, s
				break
			}
		}

		if matched < 0 {
			accepted = append(accepted, cand)
			continue
		}

		existing := accepted[matched]
		if shouldReplace(existing, cand, cfg.Strategy) {
			accepted[matched] = cand
			records = append(records, types.DuplicateRecord{Kept: cand, Removed: existing, Score: score})
		} else {
			records = append(records, types.DuplicateRecord{Kept: existing, Removed: cand, Score: score})
		}
	}
	return accepted, records
}

// shouldReplace reports whether a new duplicate displaces the accepted
// representative of its cluster under the configured strategy.
func shouldReplace(existing, candidate types.Citation, strategy types.DuplicateStrategy) bool {
	switch strategy {
	case types.KeepLongest:
		return len(candidate.Text) > len(existing.Text)

	case types.KeepMostComplete:
		if candidate.DOI != "" && existing.DOI == "" {
			return true
		}
		if existing.DOI != "" && candidate.DOI == "" {
			return false
		}
		return len(candidate.Text) > len(existing.Text)
	}

	// keep_first never replaces.
	return false
}
