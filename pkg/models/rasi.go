package models

// Rasi is one of the 12 equal 30° zodiacal sign divisions of the sidereal
// ecliptic, numbered 1 (Aries) through 12 (Pisces).
type Rasi int

const (
	Aries Rasi = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// TotalRasis is the number of signs (and houses) in a chart.
const TotalRasis = 12

var rasiNames = [...]string{
	"", "Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// rasiOwners is the classical rulership table. Closed: it is never derived
// at runtime.
var rasiOwners = [...]Planet{
	PlanetNone,
	Mars,    // Aries
	Venus,   // Taurus
	Mercury, // Gemini
	Moon,    // Cancer
	Sun,     // Leo
	Mercury, // Virgo
	Venus,   // Libra
	Mars,    // Scorpio
	Jupiter, // Sagittarius
	Saturn,  // Capricorn
	Saturn,  // Aquarius
	Jupiter, // Pisces
}

// String returns the English name of the sign.
func (r Rasi) String() string {
	if r < 1 || r > TotalRasis {
		return ""
	}
	return rasiNames[r]
}

// Valid reports whether r is in [1,12].
func (r Rasi) Valid() bool {
	return r >= 1 && r <= TotalRasis
}

// Owner returns the classical ruling planet of the sign.
func (r Rasi) Owner() Planet {
	if !r.Valid() {
		return PlanetNone
	}
	return rasiOwners[r]
}

// Nakshatra is one of the 27 equal lunar-mansion divisions of the ecliptic
// (13°20′ each), numbered 1 (Ashwini) through 27 (Revati).
type Nakshatra int

// TotalNakshatras is the number of lunar mansions on the ecliptic.
const TotalNakshatras = 27

var nakshatraNames = [...]string{
	"", "Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// String returns the English name of the lunar mansion.
func (n Nakshatra) String() string {
	if n < 1 || n > TotalNakshatras {
		return ""
	}
	return nakshatraNames[n]
}

// Valid reports whether n is in [1,27].
func (n Nakshatra) Valid() bool {
	return n >= 1 && n <= TotalNakshatras
}
