// Package tariff holds the curated Île-de-France rate grid and the route
// pricing rules built on it. Prices are expressed in "bons" (vouchers); one
// bon has a fixed euro value, so all arithmetic happens in bons and converts
// to euro cents once at the end.
package tariff
