//go:build !(386 || arm || mips || mipsle || jh32)

package jh

// On 64-bit targets E8 runs on 64-bit lanes.
var defaultEngine permutation = wideEngine{}
