// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"errors"

	"github.com/miekg/dns"
)

// A stub resolver that receives a datagram cannot trust it to be the
// answer it is waiting for. The helpers in this file layer three checks
// on top of [Unpack]: does the response belong to the query, does its
// return code allow using it, and which answer records actually answer
// the question. [ParseResponse] runs all three.

// Errors for responses that fail validation against their query.
var (
	// ErrInvalidQuery means the query does not carry exactly one question.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidResponse means the message is not the response to the
	// query: QR bit clear, wrong ID, or a question mismatch.
	ErrInvalidResponse = errors.New("invalid DNS response")
)

// Errors derived from the return code of a validated response. The
// messages end like the errors [*net.Resolver] produces for the same
// conditions, so callers matching on suffixes keep working.
var (
	// ErrNoName reports an NXDOMAIN return code.
	ErrNoName = errors.New("no such host")

	// ErrServerMisbehaving reports a return code other than NOERROR,
	// NXDOMAIN, and SERVFAIL.
	ErrServerMisbehaving = errors.New("server misbehaving")

	// ErrServerTemporarilyMisbehaving reports SERVFAIL. It deliberately
	// shares its message with [ErrServerMisbehaving], like the two
	// corresponding standard library errors do.
	ErrServerTemporarilyMisbehaving = errors.New("server misbehaving")

	// ErrNoData means the response holds no usable answer.
	ErrNoData = errors.New("no answer from DNS server")
)

// canonicalName lowercases a name and makes it fully qualified. Owner
// names inside a response need not match the query's spelling, so every
// comparison in this file goes through the canonical form.
func canonicalName(name string) string {
	return dns.CanonicalName(name)
}

func equalName(x, y string) bool {
	return canonicalName(x) == canonicalName(y)
}

// singleQuestion returns the message's question when there is exactly
// one, which is how every stub query and its response are shaped.
func singleQuestion(m *Message) (Question, bool) {
	if len(m.Questions) != 1 {
		return Question{}, false
	}
	return m.Questions[0], true
}

// ValidateResponseForQuery checks that resp answers query and returns
// the question the two messages agree on.
//
// The response must have the QR bit set, echo the query's ID, and
// restate the query's single question with the same type and class and
// an equivalent name.
func ValidateResponseForQuery(query, resp *Message) (Question, error) {
	q0, ok := singleQuestion(query)
	if !ok {
		return Question{}, ErrInvalidQuery
	}
	if !resp.Response || resp.ID != query.ID {
		return Question{}, ErrInvalidResponse
	}
	r0, ok := singleQuestion(resp)
	if !ok {
		return Question{}, ErrInvalidResponse
	}
	if r0.Type != q0.Type || r0.Class != q0.Class || !equalName(r0.Name, q0.Name) {
		return Question{}, ErrInvalidResponse
	}
	return q0, nil
}

// ResponseErrorFromRCODE turns the return code of a validated response
// into one of the errors above, or nil when the response is usable.
//
// A NOERROR response without answers from a server that is neither
// authoritative nor offering recursion is a lame referral and maps to
// [ErrNoData].
//
// Validate the response with [ValidateResponseForQuery] first.
func ResponseErrorFromRCODE(resp *Message) error {
	switch resp.RCode {
	case RCodeNoError:
		if len(resp.Answers) == 0 && !resp.Authoritative && !resp.RecursionAvailable {
			return ErrNoData
		}
		return nil
	case RCodeNXDomain:
		return ErrNoName
	case RCodeServFail:
		return ErrServerTemporarilyMisbehaving
	default:
		return ErrServerMisbehaving
	}
}

// aliasChain returns the set of canonical owner names reachable from
// the query name by following the CNAME records of the answer section
// in order. A CNAME is followed only when its owner is the current end
// of the chain; any other CNAME is skipped, so an unrelated alias cannot
// smuggle its target in.
func aliasChain(q0 Question, answers []Record) map[string]bool {
	current := canonicalName(q0.Name)
	owners := map[string]bool{current: true}
	for _, rec := range answers {
		alias, ok := rec.(*CNAME)
		if !ok || alias.Class != q0.Class {
			continue
		}
		if canonicalName(alias.Name) != current {
			continue
		}
		current = canonicalName(alias.Target)
		owners[current] = true
	}
	return owners
}

// ResponseExtractValidAnswers filters the answer section down to the
// records that answer q0: those owned by the query name itself, or by a
// name the response's CNAME chain reaches from it (RFC 1034 section
// 4.3.1 describes this shape for recursive answers). Wire order is
// preserved. No surviving record means [ErrNoData].
//
// Run [ValidateResponseForQuery] and [ResponseErrorFromRCODE] first.
func ResponseExtractValidAnswers(q0 Question, resp *Message) ([]Record, error) {
	owners := aliasChain(q0, resp.Answers)
	var valid []Record
	for _, rec := range resp.Answers {
		hdr := rec.Header()
		if hdr.Class != q0.Class || !owners[canonicalName(hdr.Name)] {
			continue
		}
		// A chain member of any record type may answer the question,
		// so the type is deliberately not checked.
		valid = append(valid, rec)
	}
	if len(valid) == 0 {
		return nil, ErrNoData
	}
	return valid, nil
}

// Response pairs a query with its validated response.
//
// Construct a new instance using [ParseResponse].
type Response struct {
	// Query is the original query message.
	Query *Message

	// Response is the response message.
	Response *Message

	// ValidRecords contains the valid records for the query.
	ValidRecords []Record
}

// ParseResponse runs the whole validation pipeline over a query and its
// presumed response and returns a [*Response] on success.
func ParseResponse(query, resp *Message) (*Response, error) {
	q0, err := ValidateResponseForQuery(query, resp)
	if err != nil {
		return nil, err
	}
	if err := ResponseErrorFromRCODE(resp); err != nil {
		return nil, err
	}
	records, err := ResponseExtractValidAnswers(q0, resp)
	if err != nil {
		return nil, err
	}
	return &Response{
		Query:        query,
		Response:     resp,
		ValidRecords: records,
	}, nil
}

// RecordsA returns the textual addresses of the valid A records, or
// [ErrNoData] when there are none.
func (r *Response) RecordsA() ([]string, error) {
	var out []string
	for _, rec := range r.ValidRecords {
		if a, ok := rec.(*A); ok {
			out = append(out, a.Addr.String())
		}
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

// RecordsAAAA returns the textual addresses of the valid AAAA records,
// or [ErrNoData] when there are none.
func (r *Response) RecordsAAAA() ([]string, error) {
	var out []string
	for _, rec := range r.ValidRecords {
		if aaaa, ok := rec.(*AAAA); ok {
			out = append(out, aaaa.Addr.String())
		}
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

// RecordFirstCNAME returns the target of the first valid CNAME record,
// or [ErrNoData] when there is none.
func (r *Response) RecordFirstCNAME() (string, error) {
	for _, rec := range r.ValidRecords {
		if alias, ok := rec.(*CNAME); ok {
			return alias.Target, nil
		}
	}
	return "", ErrNoData
}
