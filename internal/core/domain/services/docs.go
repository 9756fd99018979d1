// Package services contains stateless domain services: formula eligibility
// and recommendation rules, and the driver payout policy. Everything here is
// pure computation over domain values; inputs are pre-validated, so these
// functions never touch I/O.
package services
