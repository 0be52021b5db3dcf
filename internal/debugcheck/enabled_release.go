//go:build !uigfxdebug

package debugcheck

// Enabled reports whether assertions are compiled in.
const Enabled = false
