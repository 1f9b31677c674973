package cache

import "time"

const (
	DefaultTTL = 2 * time.Minute

	entityKeyFormat  = "entity:%s:%s:%s"
	listKeyFormat    = "list:%s:%s:%s"
	listIndexFormat  = "lists:%s:%s"
	filterHashLength = 16
)
