package redis

import "fmt"

// Key prefix for all portal data. The two keys mirror the original
// storage layout: one blob for the account collection, one for the
// current session marker.
const keyPrefix = "nhce"

// accountsKey returns the Redis key holding the whole account collection
func accountsKey() string {
	return fmt.Sprintf("%s:users", keyPrefix)
}

// sessionKey returns the Redis key holding the current session marker
func sessionKey() string {
	return fmt.Sprintf("%s:current_user", keyPrefix)
}
