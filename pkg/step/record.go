// Package step encodes numbered, cross-referencing ISO-10303-21
// records and the CONFIG_CONTROL_DESIGN document envelope that the
// generated part records splice into.
package step

import (
	"strconv"
	"strings"
)

// Record is one numbered entity of the data section. Identity is the
// assigned integer id; records reference each other by id only and are
// never mutated after creation.
type Record struct {
	ID     int
	Type   string
	Params string
}

// Ref renders the record's id reference, e.g. "#52".
func (r Record) Ref() string { return Ref(r.ID) }

// Text renders the full data line without terminator, e.g.
// "#52=CARTESIAN_POINT('Vertex',(0.,0.,0.)) ;".
func (r Record) Text() string {
	return "#" + strconv.Itoa(r.ID) + "=" + r.Type + "(" + r.Params + ") ;"
}

// Ref renders an id reference.
func Ref(id int) string { return "#" + strconv.Itoa(id) }

// RefList renders a comma-joined reference list, e.g. "#3,#4,#5".
func RefList(ids []int) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// Bool renders the STEP boolean literals .T. and .F.
func Bool(v bool) string {
	if v {
		return ".T."
	}
	return ".F."
}

// FormatReal renders v in STEP real syntax: the shortest decimal that
// round-trips, with the mantissa always carrying a point. 0 -> "0.",
// 40 -> "40.", 2.5 -> "2.5", 1e21 -> "1.E+21". Identical values always
// render identically, which is what record deduplication keys on.
func FormatReal(v float64) string {
	s := strconv.FormatFloat(v, 'G', -1, 64)
	mant, exp, hasExp := strings.Cut(s, "E")
	if !strings.Contains(mant, ".") {
		mant += "."
	}
	if hasExp {
		return mant + "E" + exp
	}
	return mant
}

// FormatCoord renders an x,y,z coordinate triple.
func FormatCoord(x, y, z float64) string {
	return FormatReal(x) + "," + FormatReal(y) + "," + FormatReal(z)
}
