// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "net/netip"

// IPv4 is the 4-byte network-order body of an A record.
type IPv4 [4]byte

// IPv6 is the 16-byte network-order body of an AAAA record.
type IPv6 [16]byte

// Addr returns the address as a [netip.Addr].
func (a IPv4) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

// String returns the dotted-quad form of the address.
func (a IPv4) String() string {
	return a.Addr().String()
}

// Addr returns the address as a [netip.Addr].
func (a IPv6) Addr() netip.Addr {
	return netip.AddrFrom16(a)
}

// String returns the canonical textual form of the address.
func (a IPv6) String() string {
	return a.Addr().String()
}

// IPv4FromAddr converts a [netip.Addr] to its A-record body. The second
// return value is false when addr is not an IPv4 address.
func IPv4FromAddr(addr netip.Addr) (IPv4, bool) {
	if !addr.Is4() {
		return IPv4{}, false
	}
	return IPv4(addr.As4()), true
}

// IPv6FromAddr converts a [netip.Addr] to its AAAA-record body. The second
// return value is false when addr is not an IPv6 address.
func IPv6FromAddr(addr netip.Addr) (IPv6, bool) {
	if !addr.Is6() || addr.Is4() {
		return IPv6{}, false
	}
	return IPv6(addr.As16()), true
}
