//go:build !hexdebug

package assert

const enabled = false
