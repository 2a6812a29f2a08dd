package main

import (
	"strconv"
	"testing"
)

func BenchmarkCandidateHash(b *testing.B) {
	payload := []byte("Hello, Bitcoin!|")
	dataLen := len(payload)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		payload = strconv.AppendInt(payload[:dataLen], int64(i), 10)
		_ = sha256Hex(payload)
	}
}

func BenchmarkMineSearchDifficulty2(b *testing.B) {
	req := MineRequest{
		Data:        "bench",
		Difficulty:  2,
		StartNonce:  0,
		MaxHashes:   hardMaxHashes,
		TimeLimitMS: 10_000,
	}
	for i := 0; i < b.N; i++ {
		req.StartNonce = int64(i)
		res := mineSearch(req)
		if res.TriedHashes == 0 {
			b.Fatal("search did no work")
		}
	}
}
