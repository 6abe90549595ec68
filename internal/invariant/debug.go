//go:build debug

package invariant

const enabled = true
