// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

// Question is one entry of the question section.
type Question struct {
	// Name is the domain name being asked about.
	Name string

	// Type is the record type being asked for.
	Type Type

	// Unique is the mDNS unicast-response bit, carried in the high
	// bit of the wire class field.
	Unique bool

	// Class is the 15-bit record class, usually [ClassINET].
	Class Class
}

func unpackQuestion(r *reader) (Question, error) {
	name, err := r.name()
	if err != nil {
		return Question{}, err
	}
	qtype, err := r.uint16()
	if err != nil {
		return Question{}, err
	}
	class, err := r.uint16()
	if err != nil {
		return Question{}, err
	}
	q := Question{
		Name:   name,
		Type:   Type(qtype),
		Unique: class&classUniqueBit != 0,
		Class:  Class(class &^ classUniqueBit),
	}
	return q, nil
}

func (q *Question) pack(w *writer) error {
	if err := w.name(q.Name); err != nil {
		return err
	}
	w.uint16(uint16(q.Type))
	class := uint16(q.Class)
	if q.Unique {
		class |= classUniqueBit
	}
	w.uint16(class)
	return nil
}
