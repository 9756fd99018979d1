// Package driver contains the Driver aggregate: the people orders get
// dispatched to, with their vehicle and availability snapshot.
package driver
