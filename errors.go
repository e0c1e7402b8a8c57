// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "errors"

// Errors returned when unpacking a message; packing returns a few of them
// too, as noted below. Each one aborts the call in progress and surfaces
// unmodified to the caller, so tests and callers can match with
// [errors.Is].
//
// Unknown OPCODE, RCODE, class, and RR-type values are deliberately not
// errors: they are kept as integers and survive a round trip, so protocol
// extensions do not break decoding.
var (
	// ErrInvalidMessageSize means the buffer is shorter than the
	// 12-byte message header, a TCP buffer is shorter than its length
	// prefix declares, or, when packing for TCP, the datagram is longer
	// than 65,535 bytes.
	ErrInvalidMessageSize = errors.New("dnswire: invalid message size")

	// ErrInvalidLabelSize means a label would run past the end of the
	// message, or a length byte uses a reserved tag. When packing, it
	// means a label is longer than 63 bytes.
	ErrInvalidLabelSize = errors.New("dnswire: invalid label size")

	// ErrInvalidLabelOffset means a compression pointer is truncated,
	// out of range, or does not point strictly backward.
	ErrInvalidLabelOffset = errors.New("dnswire: invalid label offset")

	// ErrInvalidLabelUTF8 means a label or text string is not valid UTF-8.
	ErrInvalidLabelUTF8 = errors.New("dnswire: text is not valid UTF-8")

	// ErrInvalidIntegerSize means a fixed-width integer read would run
	// past the end of the message.
	ErrInvalidIntegerSize = errors.New("dnswire: integer read past end of message")

	// ErrInvalidIPAddress means the RDATA of an A or AAAA record does
	// not hold exactly 4 or 16 address bytes.
	ErrInvalidIPAddress = errors.New("dnswire: invalid IP address size")

	// ErrInvalidDataSize means a record's RDATA did not end exactly at
	// the boundary declared by RDLENGTH. When packing, it means a TXT
	// string is longer than 255 bytes.
	ErrInvalidDataSize = errors.New("dnswire: RDATA does not match RDLENGTH")
)
