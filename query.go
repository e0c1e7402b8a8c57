// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"github.com/miekg/dns"
	"golang.org/x/net/idna"
)

// NewQuery constructs a query [*Message] with safe defaults: the name is
// IDNA encoded and fully qualified, the ID is randomized, recursion is
// requested, and the class is IN.
//
// Callers that want mDNS semantics can set Questions[0].Unique to request
// a unicast response.
func NewQuery(name string, qtype Type) (*Message, error) {
	// IDNA encode the domain name.
	punyName, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, err
	}

	// Ensure the domain name is fully qualified.
	if !dns.IsFqdn(punyName) {
		punyName = dns.Fqdn(punyName)
	}

	query := &Message{
		ID:               dns.Id(),
		RecursionDesired: true,
		Questions: []Question{{
			Name:  punyName,
			Type:  qtype,
			Class: ClassINET,
		}},
	}
	return query, nil
}
