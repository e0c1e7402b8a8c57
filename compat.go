// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "github.com/miekg/dns"

// Conversions to and from [github.com/miekg/dns] values. Both directions
// go through the wire form, which is the one representation the two
// packages are guaranteed to agree on.

// Msg converts the message to a [*dns.Msg].
func (m *Message) Msg() (*dns.Msg, error) {
	raw, err := m.Pack()
	if err != nil {
		return nil, err
	}
	out := new(dns.Msg)
	if err := out.Unpack(raw); err != nil {
		return nil, err
	}
	return out, nil
}

// FromMsg converts a [*dns.Msg] to a [*Message].
func FromMsg(msg *dns.Msg) (*Message, error) {
	raw, err := msg.Pack()
	if err != nil {
		return nil, err
	}
	return Unpack(raw)
}
