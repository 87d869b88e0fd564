package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKTPolygon parses the outer ring of a WKT POLYGON. Inner rings
// are ignored (isothetic polygons in this engine carry no holes). A
// duplicated closing vertex, which WKT requires, is dropped. The
// parsed ring is validated isothetic.
func ParseWKTPolygon(s string) (Ring, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	if !strings.HasPrefix(strings.ToUpper(s), "POLYGON") {
		return nil, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "((")
	j := strings.LastIndex(s, "))")
	if i < 0 || j <= i {
		return nil, errors.New("wkt polygon: invalid")
	}
	// Outer ring runs up to the first ring separator, if any.
	body := s[i+2 : j]
	if k := strings.Index(body, ")"); k >= 0 {
		body = body[:k]
	}
	var ring Ring
	for _, tup := range strings.Split(body, ",") {
		parts := strings.Fields(strings.TrimSpace(tup))
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		ring = append(ring, Point{X: x, Y: y})
	}
	if len(ring) > 1 && IsClosing(ring[len(ring)-1], ring[0]) {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, errors.New("wkt polygon: fewer than 3 distinct points")
	}
	if !ring.IsValidIsothetic() {
		return nil, errors.New("wkt polygon: non-isothetic edge")
	}
	return ring, nil
}

// WKT formats the ring as a WKT POLYGON with the closing vertex made
// explicit, which is what WKT consumers expect.
func (r Ring) WKT() string {
	if len(r) == 0 {
		return "POLYGON EMPTY"
	}
	var b strings.Builder
	b.WriteString("POLYGON ((")
	for i := 0; i <= len(r); i++ {
		p := r[i%len(r)]
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	b.WriteString("))")
	return b.String()
}
