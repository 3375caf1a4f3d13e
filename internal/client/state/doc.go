// Package state holds the application-state object of the SaludConecta
// client.
//
// A single Store carries four facets: the current screen, the session
// (user, authentication flag and hydration phase), the notification feed
// and the video-call session. Consumers read facets through accessors and
// change them only through the mutators defined here, so every invariant
// between fields is enforced in one place.
//
// The Store is safe for concurrent use, yet the client drives it from a
// single event loop; observers registered with Subscribe are invoked
// synchronously after each mutation, outside the internal lock.
package state
