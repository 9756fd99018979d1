// Package order contains the Order aggregate and its value objects: the
// lifecycle status machine, service formulas, vehicle types, schedules and
// addresses.
//
// The aggregate is mutated only through its transition methods (Accept,
// Dispatch, PickUp, Deliver, Cancel), each of which validates against the
// status machine and rejects atomically: a failed transition leaves the
// order exactly as it was.
package order
