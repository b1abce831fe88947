package navigation

// SegueIdentifier names a fixed transition out of a screen.
type SegueIdentifier string

const SegueBrewScoreDetails SegueIdentifier = "BrewScoreDetails"

// ParseSegueIdentifier reports whether raw names a known segue.
func ParseSegueIdentifier(raw string) (SegueIdentifier, bool) {
	switch id := SegueIdentifier(raw); id {
	case SegueBrewScoreDetails:
		return id, true
	default:
		return id, false
	}
}
