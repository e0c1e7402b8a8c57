// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnswire packs and unpacks DNS messages in the RFC 1035 wire
// format, including the mDNS cache-flush/unicast-response conventions
// used by multicast DNS and DNS-SD.
//
// [Unpack] and [*Message.Pack] convert between raw datagram bytes and the
// [*Message] value type; [UnpackTCP] and [*Message.PackTCP] handle the
// 2-byte length prefix used over stream transports. [UnpackName] and
// [PackName] expose the pointer-compressed domain-name codec so that
// servers composing messages incrementally can share one compression table.
//
// [NewQuery] constructs a query message with safe defaults, and
// [ValidateResponseForQuery] and friends validate a response against the
// query that produced it. [*Message.Msg] and [FromMsg] convert to and from
// [github.com/miekg/dns] values for interoperability with that ecosystem.
package dnswire
