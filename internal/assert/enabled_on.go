//go:build hexdebug

package assert

const enabled = true
