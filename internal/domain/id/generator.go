// Package id builds primary keys for new rows. There is no central sequence
// authority: most keys are the entity prefix plus a wall-clock timestamp, so
// two creations of the same entity type within one second collide. The UI
// workflow makes that rare, not impossible; the window is documented and
// tested rather than hidden.
package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Entity prefixes for timestamp-derived keys.
const (
	PrefixCustomer = "C"
	PrefixSale     = "S"
	PrefixProduct  = "PN"
	PrefixBill     = "BD"
)

// timestampKey renders <prefix><YYMMDDHHMMSS>, e.g. C251129143052.
func timestampKey(prefix string, now time.Time) string {
	return prefix + now.Format("060102150405")
}

// Customer returns a new customer key for the given instant.
func Customer(now time.Time) string { return timestampKey(PrefixCustomer, now) }

// Sale returns a new sale key for the given instant.
func Sale(now time.Time) string { return timestampKey(PrefixSale, now) }

// Product returns a new product key for the given instant.
func Product(now time.Time) string { return timestampKey(PrefixProduct, now) }

// Bill returns a new bill key for the given instant.
func Bill(now time.Time) string { return timestampKey(PrefixBill, now) }

// Team returns the next employee key after latest, zero-padded to four
// digits: EID0001, EID0002, ... An empty or unparsable latest restarts the
// sequence at EID0001.
func Team(latest string) string {
	next := 1
	if strings.HasPrefix(latest, "EID") {
		if n, err := strconv.Atoi(strings.TrimPrefix(latest, "EID")); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("EID%04d", next)
}

// Installation returns the next installation key after latest: I001, I002, ...
func Installation(latest string) string {
	next := 1
	if strings.HasPrefix(latest, "I") {
		if n, err := strconv.Atoi(strings.TrimPrefix(latest, "I")); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("I%03d", next)
}
