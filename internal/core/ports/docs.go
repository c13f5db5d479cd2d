// Package ports declares the interfaces the application core needs from the outside:
// session storage, confirmation text generation, notification delivery and reverse
// geocoding. Adapters under internal/adapters/out implement them.
package ports
