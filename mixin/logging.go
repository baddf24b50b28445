// Package mixin shares small behaviours between unrelated types through
// composition. Logging is embedded as a collaborator; serialization and
// representation are free functions that take the target value.
package mixin

import "github.com/xuenqlve/patterns/log"

// Logging is embedded by types that want a Log method tagged with their name.
type Logging struct {
	owner string
}

func NewLogging(owner string) Logging {
	return Logging{owner: owner}
}

func (l Logging) Log(message string) {
	log.Infof("LOG - %s: %s", l.owner, message)
}
