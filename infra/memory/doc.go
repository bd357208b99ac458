// Package memory is the bottom layer underneath the ownership types in
// domain/owner. It knows how to release one allocation, how to name it
// by address, and how to tell observers that a release happened.
//
// Every release is stamped with a sequence number and handed to the
// installed Notifier before the allocation is zeroed. The default
// notifier discards events; LogNotifier, ReleaseRing and the
// Prometheus collector in infra/metrics are the stock observers.
//
// Nothing in this package is safe for concurrent use. Ownership in
// this module is single-threaded by contract.
package memory
