package ports

import "iter"

// Digester computes content fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// Fingerprint returns a stable hex digest of the given strings, in order.
	Fingerprint(entries iter.Seq[string]) string
}
