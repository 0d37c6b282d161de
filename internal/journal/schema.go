package journal

import "fmt"

// Redis key pattern helpers
//
// Keys and channels are namespaced by instance name so several runs can
// share one Redis server.
//
// Key pattern: cinereviews:{instance_name}:{entity}
// Channel pattern: cinereviews:{instance_name}:{entity}_events

// EntriesKey returns the Redis list holding journal entries in append order.
// Pattern: cinereviews:{instance_name}:journal
func EntriesKey(instanceName string) string {
	return fmt.Sprintf("cinereviews:%s:journal", instanceName)
}

// EventsChannel returns the Pub/Sub channel each entry is published on.
// Pattern: cinereviews:{instance_name}:journal_events
func EventsChannel(instanceName string) string {
	return fmt.Sprintf("cinereviews:%s:journal_events", instanceName)
}
