package model

// Sports is the seed set of offered sports. Extend here; the dashboard and
// slot validation pick the list up automatically.
var Sports = []string{
	"Pickleball",
	"Badminton",
}

func IsKnownSport(sport string) bool {
	for _, s := range Sports {
		if s == sport {
			return true
		}
	}
	return false
}
