//go:build !nojsonsimd

package main

import (
	"reflect"

	"github.com/bytedance/sonic"
)

func init() {
	// Sonic uses runtime codegen for best performance. Pretouching the API
	// types at startup avoids first-hit latency spikes on the mine path.
	//
	// Errors are best-effort; we fall back to normal behavior if pretouch fails.
	_ = sonic.Pretouch(reflect.TypeOf(MineRequest{}))
	_ = sonic.Pretouch(reflect.TypeOf(MineResult{}))
	_ = sonic.Pretouch(reflect.TypeOf(databaseDiag{}))
	_ = sonic.Pretouch(reflect.TypeOf(statusData{}))
}
