package main

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"testing"
	"time"
)

// independentDigest recomputes a candidate digest with crypto/sha256 so the
// tests do not depend on the build-tagged implementation under test.
func independentDigest(data string, nonce int64) string {
	sum := sha256.Sum256([]byte(data + "|" + strconv.FormatInt(nonce, 10)))
	return hex.EncodeToString(sum[:])
}

func TestMineSearchFindsSmallestNonce(t *testing.T) {
	req := MineRequest{
		Data:        "Hello, Bitcoin!",
		Difficulty:  1,
		StartNonce:  0,
		MaxHashes:   defaultMineMaxHashes,
		TimeLimitMS: 10_000,
	}
	res := mineSearch(req)
	if !res.Found {
		t.Fatalf("expected a match at difficulty 1, tried=%d", res.TriedHashes)
	}
	if res.Nonce == nil || res.HashHex == nil {
		t.Fatalf("found result missing nonce/hash: %+v", res)
	}
	if got := independentDigest(req.Data, *res.Nonce); got != *res.HashHex {
		t.Fatalf("hash mismatch: search=%s recomputed=%s", *res.HashHex, got)
	}
	if !strings.HasPrefix(*res.HashHex, "0") {
		t.Fatalf("digest %s lacks the zero prefix", *res.HashHex)
	}
	for n := req.StartNonce; n < *res.Nonce; n++ {
		if strings.HasPrefix(independentDigest(req.Data, n), "0") {
			t.Fatalf("nonce %d already satisfies the prefix; search returned %d", n, *res.Nonce)
		}
	}
	if res.TriedHashes != *res.Nonce-req.StartNonce+1 {
		t.Fatalf("tried=%d, want %d (one hash per nonce up to the match)",
			res.TriedHashes, *res.Nonce-req.StartNonce+1)
	}
}

func TestMineSearchHonorsHashCap(t *testing.T) {
	res := mineSearch(MineRequest{
		Data:        "cap test",
		Difficulty:  7,
		StartNonce:  0,
		MaxHashes:   10,
		TimeLimitMS: 10_000,
	})
	if res.TriedHashes > 10 {
		t.Fatalf("tried=%d exceeds max_hashes=10", res.TriedHashes)
	}
	if res.Found {
		// A 7-zero digest inside 10 attempts is ~10/16^7; treat as failure
		// so a broken prefix check cannot hide behind luck.
		t.Fatalf("implausible match within 10 attempts: %+v", res)
	}
	if res.Nonce != nil || res.HashHex != nil {
		t.Fatalf("not-found result must carry null nonce/hash: %+v", res)
	}
	if res.TargetPrefix != "0000000" {
		t.Fatalf("target_prefix=%q, want seven zeros", res.TargetPrefix)
	}
}

func TestMineSearchHonorsTimeCap(t *testing.T) {
	start := time.Now()
	res := mineSearch(MineRequest{
		Data:        "time cap",
		Difficulty:  7,
		StartNonce:  0,
		MaxHashes:   hardMaxHashes,
		TimeLimitMS: 50,
	})
	wall := time.Since(start)
	if res.Found {
		t.Fatalf("implausible match at difficulty 7 within 50ms: %+v", res)
	}
	// Lenient bound: one in-flight hash may overshoot, but the loop must
	// not run far past the deadline.
	if wall > time.Second {
		t.Fatalf("search ran %v against a 50ms budget", wall)
	}
	if res.ElapsedMS < 0 {
		t.Fatalf("negative elapsed_ms: %d", res.ElapsedMS)
	}
	if res.TriedHashes > hardMaxHashes {
		t.Fatalf("tried=%d exceeds the hard cap", res.TriedHashes)
	}
}

func TestMineSearchDeterministic(t *testing.T) {
	req := MineRequest{
		Data:        "determinism",
		Difficulty:  2,
		StartNonce:  0,
		MaxHashes:   hardMaxHashes,
		TimeLimitMS: 10_000,
	}
	first := mineSearch(req)
	second := mineSearch(req)
	if !first.Found || !second.Found {
		t.Fatalf("expected both runs to find a match: %+v / %+v", first, second)
	}
	if *first.Nonce != *second.Nonce || *first.HashHex != *second.HashHex {
		t.Fatalf("non-deterministic result: (%d,%s) vs (%d,%s)",
			*first.Nonce, *first.HashHex, *second.Nonce, *second.HashHex)
	}
}

func TestMineSearchNegativeStartNonce(t *testing.T) {
	req := MineRequest{
		Data:        "negative start",
		Difficulty:  1,
		StartNonce:  -5,
		MaxHashes:   defaultMineMaxHashes,
		TimeLimitMS: 10_000,
	}
	res := mineSearch(req)
	if !res.Found {
		t.Fatalf("expected a match at difficulty 1")
	}
	if *res.Nonce < -5 {
		t.Fatalf("nonce %d precedes start_nonce", *res.Nonce)
	}
	if got := independentDigest(req.Data, *res.Nonce); got != *res.HashHex {
		t.Fatalf("negative nonce payload mismatch: search=%s recomputed=%s", *res.HashHex, got)
	}
}

func TestMineSearchZeroBudgets(t *testing.T) {
	res := mineSearch(MineRequest{
		Data:        "no budget",
		Difficulty:  1,
		MaxHashes:   0,
		TimeLimitMS: 10_000,
	})
	if res.Found || res.TriedHashes != 0 {
		t.Fatalf("max_hashes=0 must do no work: %+v", res)
	}

	res = mineSearch(MineRequest{
		Data:        "no budget",
		Difficulty:  1,
		MaxHashes:   defaultMineMaxHashes,
		TimeLimitMS: 0,
	})
	if res.Found || res.TriedHashes != 0 {
		t.Fatalf("time_limit_ms=0 must do no work: %+v", res)
	}
}

func TestValidateMineRequest(t *testing.T) {
	base := defaultMineRequest()

	if err := validateMineRequest(base); err != nil {
		t.Fatalf("default request must validate: %v", err)
	}

	req := base
	req.MaxHashes = hardMaxHashes
	if err := validateMineRequest(req); err != nil {
		t.Fatalf("max_hashes at the ceiling must validate: %v", err)
	}

	req.MaxHashes = hardMaxHashes + 1
	if err := validateMineRequest(req); err == nil {
		t.Fatal("max_hashes over the ceiling must be rejected")
	} else if !strings.Contains(err.Error(), "max_hashes") {
		t.Fatalf("rejection should name max_hashes: %v", err)
	}

	for _, d := range []int{0, -1, 8, 100} {
		req = base
		req.Difficulty = d
		if err := validateMineRequest(req); err == nil {
			t.Fatalf("difficulty %d must be rejected", d)
		}
	}
	for d := minMineDifficulty; d <= maxMineDifficulty; d++ {
		req = base
		req.Difficulty = d
		if err := validateMineRequest(req); err != nil {
			t.Fatalf("difficulty %d must validate: %v", d, err)
		}
	}
}

func TestDefaultMineRequestValues(t *testing.T) {
	req := defaultMineRequest()
	if req.Data != "Hello, Bitcoin!" {
		t.Fatalf("default data=%q", req.Data)
	}
	if req.Difficulty != 4 || req.StartNonce != 0 || req.MaxHashes != 200_000 || req.TimeLimitMS != 1500 {
		t.Fatalf("unexpected defaults: %+v", req)
	}
}
