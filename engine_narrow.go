//go:build 386 || arm || mips || mipsle || jh32

package jh

// 32-bit targets, or builds tagged jh32, run E8 on 32-bit lanes.
var defaultEngine permutation = narrowEngine{}
