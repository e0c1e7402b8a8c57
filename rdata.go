// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// A is an IPv4 host address record.
type A struct {
	RRHeader

	// Addr is the 4-byte address in network order.
	Addr IPv4
}

// NewA constructs an A record for name with the given TTL and address,
// class IN, cache-flush bit clear.
func NewA(name string, ttl uint32, addr IPv4) *A {
	return &A{
		RRHeader: RRHeader{Name: name, Type: TypeA, Class: ClassINET, TTL: ttl},
		Addr:     addr,
	}
}

// Header implements [Record].
func (rr *A) Header() *RRHeader { return &rr.RRHeader }

func (rr *A) packRData(w *writer) error {
	w.bytes(rr.Addr[:])
	return nil
}

func (rr *A) unpackRData(r *reader, end int) error {
	if end-r.off != len(rr.Addr) {
		return ErrInvalidIPAddress
	}
	raw, err := r.bytes(len(rr.Addr))
	if err != nil {
		return ErrInvalidIPAddress
	}
	copy(rr.Addr[:], raw)
	return nil
}

// AAAA is an IPv6 host address record.
type AAAA struct {
	RRHeader

	// Addr is the 16-byte address in network order.
	Addr IPv6
}

// NewAAAA constructs an AAAA record for name with the given TTL and
// address, class IN, cache-flush bit clear.
func NewAAAA(name string, ttl uint32, addr IPv6) *AAAA {
	return &AAAA{
		RRHeader: RRHeader{Name: name, Type: TypeAAAA, Class: ClassINET, TTL: ttl},
		Addr:     addr,
	}
}

// Header implements [Record].
func (rr *AAAA) Header() *RRHeader { return &rr.RRHeader }

func (rr *AAAA) packRData(w *writer) error {
	w.bytes(rr.Addr[:])
	return nil
}

func (rr *AAAA) unpackRData(r *reader, end int) error {
	if end-r.off != len(rr.Addr) {
		return ErrInvalidIPAddress
	}
	raw, err := r.bytes(len(rr.Addr))
	if err != nil {
		return ErrInvalidIPAddress
	}
	copy(rr.Addr[:], raw)
	return nil
}

// CNAME is an alias record whose RDATA is the canonical name.
type CNAME struct {
	RRHeader

	// Target is the canonical name the owner is an alias for.
	Target string
}

// NewCNAME constructs a CNAME record, class IN, cache-flush bit clear.
func NewCNAME(name string, ttl uint32, target string) *CNAME {
	return &CNAME{
		RRHeader: RRHeader{Name: name, Type: TypeCNAME, Class: ClassINET, TTL: ttl},
		Target:   target,
	}
}

// Header implements [Record].
func (rr *CNAME) Header() *RRHeader { return &rr.RRHeader }

func (rr *CNAME) packRData(w *writer) error {
	return w.name(rr.Target)
}

func (rr *CNAME) unpackRData(r *reader, end int) error {
	target, err := r.name()
	if err != nil {
		return err
	}
	if r.off != end {
		return ErrInvalidDataSize
	}
	rr.Target = target
	return nil
}

// PTR is a domain-name pointer record, the backbone of DNS-SD service
// enumeration.
type PTR struct {
	RRHeader

	// Target is the name the owner points at.
	Target string
}

// NewPTR constructs a PTR record, class IN, cache-flush bit clear.
func NewPTR(name string, ttl uint32, target string) *PTR {
	return &PTR{
		RRHeader: RRHeader{Name: name, Type: TypePTR, Class: ClassINET, TTL: ttl},
		Target:   target,
	}
}

// Header implements [Record].
func (rr *PTR) Header() *RRHeader { return &rr.RRHeader }

func (rr *PTR) packRData(w *writer) error {
	return w.name(rr.Target)
}

func (rr *PTR) unpackRData(r *reader, end int) error {
	target, err := r.name()
	if err != nil {
		return err
	}
	if r.off != end {
		return ErrInvalidDataSize
	}
	rr.Target = target
	return nil
}

// SRV is a service locator record (RFC 2782).
type SRV struct {
	RRHeader

	// Priority orders targets, lowest first.
	Priority uint16

	// Weight breaks priority ties, proportionally.
	Weight uint16

	// Port is the service port on Target.
	Port uint16

	// Target is the host providing the service.
	Target string
}

// NewSRV constructs an SRV record, class IN, cache-flush bit clear.
func NewSRV(name string, ttl uint32, priority, weight, port uint16, target string) *SRV {
	return &SRV{
		RRHeader: RRHeader{Name: name, Type: TypeSRV, Class: ClassINET, TTL: ttl},
		Priority: priority,
		Weight:   weight,
		Port:     port,
		Target:   target,
	}
}

// Header implements [Record].
func (rr *SRV) Header() *RRHeader { return &rr.RRHeader }

func (rr *SRV) packRData(w *writer) error {
	w.uint16(rr.Priority)
	w.uint16(rr.Weight)
	w.uint16(rr.Port)
	return w.name(rr.Target)
}

func (rr *SRV) unpackRData(r *reader, end int) error {
	var err error
	if rr.Priority, err = r.uint16(); err != nil {
		return err
	}
	if rr.Weight, err = r.uint16(); err != nil {
		return err
	}
	if rr.Port, err = r.uint16(); err != nil {
		return err
	}
	if rr.Target, err = r.name(); err != nil {
		return err
	}
	if r.off != end {
		return ErrInvalidDataSize
	}
	return nil
}

// SOA is a start-of-authority record.
type SOA struct {
	RRHeader

	// MName is the primary name server for the zone.
	MName string

	// RName is the mailbox of the zone's responsible person.
	RName string

	// Serial is the zone's version number.
	Serial uint32

	// Refresh is the secondary refresh interval in seconds.
	Refresh int32

	// Retry is the failed-refresh retry interval in seconds.
	Retry int32

	// Expire bounds how long a secondary keeps serving the zone.
	Expire int32

	// Minimum is the negative-caching TTL.
	Minimum uint32
}

// NewSOA constructs a SOA record, class IN, cache-flush bit clear.
func NewSOA(name string, ttl uint32, mname, rname string,
	serial uint32, refresh, retry, expire int32, minimum uint32) *SOA {
	return &SOA{
		RRHeader: RRHeader{Name: name, Type: TypeSOA, Class: ClassINET, TTL: ttl},
		MName:    mname,
		RName:    rname,
		Serial:   serial,
		Refresh:  refresh,
		Retry:    retry,
		Expire:   expire,
		Minimum:  minimum,
	}
}

// Header implements [Record].
func (rr *SOA) Header() *RRHeader { return &rr.RRHeader }

func (rr *SOA) packRData(w *writer) error {
	if err := w.name(rr.MName); err != nil {
		return err
	}
	if err := w.name(rr.RName); err != nil {
		return err
	}
	w.uint32(rr.Serial)
	w.int32(rr.Refresh)
	w.int32(rr.Retry)
	w.int32(rr.Expire)
	w.uint32(rr.Minimum)
	return nil
}

func (rr *SOA) unpackRData(r *reader, end int) error {
	var err error
	if rr.MName, err = r.name(); err != nil {
		return err
	}
	if rr.RName, err = r.name(); err != nil {
		return err
	}
	if rr.Serial, err = r.uint32(); err != nil {
		return err
	}
	if rr.Refresh, err = r.int32(); err != nil {
		return err
	}
	if rr.Retry, err = r.int32(); err != nil {
		return err
	}
	if rr.Expire, err = r.int32(); err != nil {
		return err
	}
	if rr.Minimum, err = r.uint32(); err != nil {
		return err
	}
	if r.off != end {
		return ErrInvalidDataSize
	}
	return nil
}

// TXT is a text record. The RDATA is a run of length-prefixed strings;
// DNS-SD uses them as key=value attributes, so strings containing "=" are
// split on the first "=" into Attrs and the rest collect into Text.
type TXT struct {
	RRHeader

	// Attrs holds the key=value strings, split on the first "=".
	Attrs map[string]string

	// Text holds the strings without a "=".
	Text []string
}

// NewTXT constructs a TXT record carrying the given attributes, class IN,
// cache-flush bit clear.
func NewTXT(name string, ttl uint32, attrs map[string]string) *TXT {
	return &TXT{
		RRHeader: RRHeader{Name: name, Type: TypeTXT, Class: ClassINET, TTL: ttl},
		Attrs:    attrs,
	}
}

// Header implements [Record].
func (rr *TXT) Header() *RRHeader { return &rr.RRHeader }

// Attrs is emitted sorted by key so the wire form is deterministic.
func (rr *TXT) packRData(w *writer) error {
	for _, key := range slices.Sorted(maps.Keys(rr.Attrs)) {
		if err := packTXTString(w, key+"="+rr.Attrs[key]); err != nil {
			return err
		}
	}
	for _, s := range rr.Text {
		if err := packTXTString(w, s); err != nil {
			return err
		}
	}
	return nil
}

func packTXTString(w *writer, s string) error {
	if len(s) > 0xFF {
		return ErrInvalidDataSize
	}
	w.uint8(uint8(len(s)))
	w.bytes([]byte(s))
	return nil
}

func (rr *TXT) unpackRData(r *reader, end int) error {
	for r.off < end {
		size := int(r.msg[r.off])
		r.off++
		if r.off+size > end {
			return ErrInvalidDataSize
		}
		raw := r.msg[r.off : r.off+size]
		r.off += size
		if !utf8.Valid(raw) {
			return ErrInvalidLabelUTF8
		}
		entry := string(raw)
		if key, value, ok := strings.Cut(entry, "="); ok {
			if rr.Attrs == nil {
				rr.Attrs = make(map[string]string)
			}
			rr.Attrs[key] = value
			continue
		}
		rr.Text = append(rr.Text, entry)
	}
	return nil
}

// Opaque carries the RDATA of a record type this package has no variant
// for. The bytes are preserved verbatim and re-emitted verbatim, so
// unknown types survive a round trip untouched.
type Opaque struct {
	RRHeader

	// Data is the raw RDATA.
	Data []byte
}

// NewOpaque constructs a record of an arbitrary type code with verbatim
// RDATA, class IN, cache-flush bit clear.
func NewOpaque(name string, rtype Type, ttl uint32, data []byte) *Opaque {
	return &Opaque{
		RRHeader: RRHeader{Name: name, Type: rtype, Class: ClassINET, TTL: ttl},
		Data:     data,
	}
}

// Header implements [Record].
func (rr *Opaque) Header() *RRHeader { return &rr.RRHeader }

func (rr *Opaque) packRData(w *writer) error {
	w.bytes(rr.Data)
	return nil
}

func (rr *Opaque) unpackRData(r *reader, end int) error {
	raw, err := r.bytes(end - r.off)
	if err != nil {
		return ErrInvalidDataSize
	}
	rr.Data = slices.Clone(raw)
	return nil
}
