// Package kernel contains shared value objects used across the domain model.
//
// It currently provides Code, the opaque external handle of a purchase.
// Value objects in this package are immutable, validated at construction,
// and safe to pass by value.
package kernel
