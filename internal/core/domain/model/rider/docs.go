// Package rider contains the Rider aggregate: an application that an
// administrator approves, rejects, deactivates, or reactivates, plus the
// rider's idle/in-delivery workload flag.
package rider
