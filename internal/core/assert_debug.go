//go:build arcadedebug

package core

const strictBounds = true
