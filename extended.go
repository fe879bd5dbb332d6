package trakt

import (
	"github.com/ansg191/trakt/internal/flagset"
)

// ExtendedInfo selects the optional response sections requested with the
// "extended" query parameter.
type ExtendedInfo uint16

const (
	ExtendedFull ExtendedInfo = 1 << iota
	ExtendedMetadata
	ExtendedEpisodes
	ExtendedNoSeasons
	ExtendedGuestStars
	ExtendedVIP
	ExtendedImages
)

var extendedNames = flagset.Names{"full", "metadata", "episodes", "noseasons", "guest_stars", "vip", "images"}

func (e ExtendedInfo) Has(flag ExtendedInfo) bool { return e&flag == flag }

// String joins the set flags with commas in declaration order.
func (e ExtendedInfo) String() string { return extendedNames.Format(uint64(e)) }

func (e ExtendedInfo) IsZero() bool { return e == 0 }

func (e ExtendedInfo) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *ExtendedInfo) UnmarshalText(b []byte) error {
	set, err := extendedNames.Parse(string(b))
	if err != nil {
		return &ParseError{Kind: ParseDecode, Err: err}
	}
	*e = ExtendedInfo(set)
	return nil
}
