package ephem

import (
	"fmt"
	"strings"
)

// Body identifies a major planet in the numbering used throughout the
// almanac.  Body 3 is the Earth-Moon barycentre, not the Earth itself.
type Body int

const (
	Mercury Body = iota + 1
	Venus
	EarthMoonBary
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

var bodyNames = [...]string{
	"Mercury", "Venus", "EMB", "Mars", "Jupiter",
	"Saturn", "Uranus", "Neptune", "Pluto",
}

func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b-1]
}

// Valid reports whether b names one of the nine supported bodies.
func (b Body) Valid() bool { return b >= Mercury && b <= Pluto }

// All lists the supported bodies in heliocentric order.
func All() []Body {
	return []Body{
		Mercury, Venus, EarthMoonBary, Mars, Jupiter,
		Saturn, Uranus, Neptune, Pluto,
	}
}

// ParseBody resolves a body name as accepted on the command line.
// Matching is case-insensitive; "earth" and "emb" both select the
// Earth-Moon barycentre.
func ParseBody(s string) (Body, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mercury":
		return Mercury, nil
	case "venus":
		return Venus, nil
	case "earth", "emb", "earth-moon":
		return EarthMoonBary, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	case "saturn":
		return Saturn, nil
	case "uranus":
		return Uranus, nil
	case "neptune":
		return Neptune, nil
	case "pluto":
		return Pluto, nil
	}
	return 0, fmt.Errorf("unknown body %q", s)
}
