package redis

import "fmt"

// Key prefix for all engine data
const keyPrefix = "tilegame"

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}

// layoutKey returns the Redis key for a named premium layout
func layoutKey(name string) string {
	return fmt.Sprintf("%s:layout:%s", keyPrefix, name)
}

// layoutIndexKey returns the Redis key for the SET of layout names
func layoutIndexKey() string {
	return fmt.Sprintf("%s:idx:layouts", keyPrefix)
}
