// Package kernel contains the shared value objects of the domain model:
// identifiers and geographic points. These types are immutable, validated at
// construction, and carry no dependencies on any specific aggregate.
package kernel
