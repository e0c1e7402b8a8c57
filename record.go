// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import "github.com/bassosimone/runtimex"

// RRHeader holds the fields common to every resource record.
type RRHeader struct {
	// Name is the domain name the record belongs to.
	Name string

	// Type is the 16-bit record type code. For the typed variants it
	// is fixed by the constructor; for [*Opaque] it carries whatever
	// code was on the wire.
	Type Type

	// Unique is the mDNS cache-flush bit, carried in the high bit of
	// the wire class field.
	Unique bool

	// Class is the 15-bit record class, usually [ClassINET].
	Class Class

	// TTL is the time to live in seconds.
	TTL uint32
}

// Record is one resource record. The concrete types are [*A], [*AAAA],
// [*CNAME], [*PTR], [*SRV], [*SOA], [*TXT], and [*Opaque]; the set is
// closed and dispatch happens on the wire type code.
type Record interface {
	// Header returns the record's common fields.
	Header() *RRHeader

	packRData(w *writer) error
	unpackRData(r *reader, end int) error
}

// newRecord returns the empty variant that decodes the given type code.
// Codes this package has no variant for land in [*Opaque], which keeps
// the RDATA bytes verbatim.
func newRecord(t Type) Record {
	switch t {
	case TypeA:
		return &A{}
	case TypeAAAA:
		return &AAAA{}
	case TypeCNAME:
		return &CNAME{}
	case TypePTR:
		return &PTR{}
	case TypeSRV:
		return &SRV{}
	case TypeSOA:
		return &SOA{}
	case TypeTXT:
		return &TXT{}
	default:
		return &Opaque{}
	}
}

func unpackRecord(r *reader) (Record, error) {
	name, err := r.name()
	if err != nil {
		return nil, err
	}
	rtype, err := r.uint16()
	if err != nil {
		return nil, err
	}
	class, err := r.uint16()
	if err != nil {
		return nil, err
	}
	ttl, err := r.uint32()
	if err != nil {
		return nil, err
	}
	rdlength, err := r.uint16()
	if err != nil {
		return nil, err
	}
	end := r.off + int(rdlength)
	if end > len(r.msg) {
		return nil, ErrInvalidDataSize
	}
	rec := newRecord(Type(rtype))
	*rec.Header() = RRHeader{
		Name:   name,
		Type:   Type(rtype),
		Unique: class&classUniqueBit != 0,
		Class:  Class(class &^ classUniqueBit),
		TTL:    ttl,
	}
	if err := rec.unpackRData(r, end); err != nil {
		return nil, err
	}
	return rec, nil
}

// packRecord writes the record's common fields, then the RDATA behind a
// 2-byte RDLENGTH placeholder that is patched afterwards. The RDATA of
// name-bearing variants may emit compression pointers into the message
// written so far, so its length is only known once written.
func packRecord(w *writer, rec Record) error {
	hdr := rec.Header()
	if err := w.name(hdr.Name); err != nil {
		return err
	}
	w.uint16(uint16(hdr.Type))
	class := uint16(hdr.Class)
	if hdr.Unique {
		class |= classUniqueBit
	}
	w.uint16(class)
	w.uint32(hdr.TTL)
	placeholder := w.reserveUint16()
	if err := rec.packRData(w); err != nil {
		return err
	}
	rdlength := len(w.buf) - placeholder - 2
	runtimex.Assert(rdlength >= 0 && rdlength <= 0xFFFF)
	w.patchUint16(placeholder, uint16(rdlength))
	return nil
}
