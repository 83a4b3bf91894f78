package rulebook

// DefaultAlignment is applied when a stored record predates the field
const DefaultAlignment = "Neutral"

// Alignments lists the nine standard alignments
var Alignments = []string{
	"Lawful Good",
	"Neutral Good",
	"Chaotic Good",
	"Lawful Neutral",
	"Neutral",
	"Chaotic Neutral",
	"Lawful Evil",
	"Neutral Evil",
	"Chaotic Evil",
}

// IsValidAlignment reports whether the value is one of the nine alignments
func IsValidAlignment(alignment string) bool {
	for _, a := range Alignments {
		if a == alignment {
			return true
		}
	}
	return false
}
