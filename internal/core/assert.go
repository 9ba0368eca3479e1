//go:build !arcadedebug

package core

// strictBounds turns silent clipping into panics. Enable with -tags arcadedebug.
const strictBounds = false
