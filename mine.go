package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MineRequest is the /api/mine body. Decode it over defaultMineRequest so
// omitted fields keep their defaults while explicit zero values are still
// seen by validation.
type MineRequest struct {
	Data        string `json:"data"`
	Difficulty  int    `json:"difficulty"`
	StartNonce  int64  `json:"start_nonce"`
	MaxHashes   int64  `json:"max_hashes"`
	TimeLimitMS int64  `json:"time_limit_ms"`
}

// MineResult reports one bounded search. Nonce and HashHex are null unless
// a match was found.
type MineResult struct {
	Found        bool    `json:"found"`
	Nonce        *int64  `json:"nonce"`
	HashHex      *string `json:"hash_hex"`
	TriedHashes  int64   `json:"tried_hashes"`
	ElapsedMS    int64   `json:"elapsed_ms"`
	TargetPrefix string  `json:"target_prefix"`
}

func defaultMineRequest() MineRequest {
	return MineRequest{
		Data:        defaultMineData,
		Difficulty:  defaultMineDifficulty,
		StartNonce:  defaultMineStartNonce,
		MaxHashes:   defaultMineMaxHashes,
		TimeLimitMS: defaultMineTimeLimitMS,
	}
}

// validateMineRequest rejects bad parameters before any hashing happens.
func validateMineRequest(req MineRequest) error {
	if req.MaxHashes > hardMaxHashes {
		return fmt.Errorf("max_hashes too large; must be <= %d", hardMaxHashes)
	}
	if req.Difficulty < minMineDifficulty || req.Difficulty > maxMineDifficulty {
		return fmt.Errorf("difficulty must be between %d and %d", minMineDifficulty, maxMineDifficulty)
	}
	return nil
}

// mineSearch walks the nonce space upward from StartNonce, hashing
// data|nonce until the digest carries the required zero prefix or a cap is
// hit. Both caps are checked before each attempt, so one in-flight hash may
// slightly overshoot the time budget; elapsed is measured after loop exit
// and kept as-is. Running out of budget is a normal found=false result, not
// an error.
func mineSearch(req MineRequest) MineResult {
	targetPrefix := strings.Repeat("0", req.Difficulty)
	start := time.Now()
	deadline := start.Add(time.Duration(req.TimeLimitMS) * time.Millisecond)

	var tried int64
	nonce := req.StartNonce

	var foundNonce *int64
	var foundHash *string

	// One reusable buffer: data and delimiter stay in place, only the
	// decimal nonce suffix is rewritten per attempt.
	payload := make([]byte, 0, len(req.Data)+1+20)
	payload = append(payload, req.Data...)
	payload = append(payload, '|')
	dataLen := len(payload)

	for tried < req.MaxHashes && time.Now().Before(deadline) {
		payload = strconv.AppendInt(payload[:dataLen], nonce, 10)
		digest := sha256Hex(payload)
		tried++
		if strings.HasPrefix(digest, targetPrefix) {
			n := nonce
			h := digest
			foundNonce = &n
			foundHash = &h
			break
		}
		nonce++
	}

	return MineResult{
		Found:        foundNonce != nil,
		Nonce:        foundNonce,
		HashHex:      foundHash,
		TriedHashes:  tried,
		ElapsedMS:    time.Since(start).Milliseconds(),
		TargetPrefix: targetPrefix,
	}
}
