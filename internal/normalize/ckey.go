package normalize

// CKey is the composite key identifying an entry within one namespace:
// a normalized key paired with an optional, caller-supplied ID. Two
// entries with identical (NKey, ID) are the same entry; entries
// sharing NKey but differing in ID coexist.
type CKey struct {
	NKey string
	ID   string
}

// MakeCKey normalizes raw under locale and pairs it with id to produce
// a composite key. An absent id is equivalent to id == "".
func MakeCKey(raw, id, locale string) (CKey, error) {
	nkey, err := Normalize(raw, locale)
	if err != nil {
		return CKey{}, err
	}
	return CKey{NKey: nkey, ID: id}, nil
}

// Bytes renders the canonical byte layout used for equality and
// persistence: nkey || 0x00 || id || 0x00.
func (k CKey) Bytes() []byte {
	buf := make([]byte, 0, len(k.NKey)+len(k.ID)+2)
	buf = append(buf, k.NKey...)
	buf = append(buf, 0)
	buf = append(buf, k.ID...)
	buf = append(buf, 0)
	return buf
}
