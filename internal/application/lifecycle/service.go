// Package lifecycle drives events from draft through moderation to
// publication, and serves the public read side.
package lifecycle

type Service struct {
	events     EventStore
	users      UserDirectory
	categories CategoryDirectory
	locations  LocationStore
	stats      Analytics
	avail      Availability
	clock      Clock
}

func New(
	events EventStore,
	users UserDirectory,
	categories CategoryDirectory,
	locations LocationStore,
	stats Analytics,
	avail Availability,
	clock Clock,
) *Service {
	return &Service{
		events:     events,
		users:      users,
		categories: categories,
		locations:  locations,
		stats:      stats,
		avail:      avail,
		clock:      clock,
	}
}
