package common

// NICHES are the coarse content categories a bounty can be tagged with.
// Bounties may carry no niche at all; the discovery filter excludes those
// once any niche filter is active.
var NICHES = map[string]struct{}{
	"beauty":       struct{}{},
	"fashion":      struct{}{},
	"fitness":      struct{}{},
	"food & drink": struct{}{},
	"gaming":       struct{}{},
	"lifestyle":    struct{}{},
	"music":        struct{}{},
	"parenting":    struct{}{},
	"personal finance": struct{}{},
	"pets":         struct{}{},
	"tech":         struct{}{},
	"travel":       struct{}{},
}

func GetNiches() []string {
	out := make([]string, 0, len(NICHES))
	for k := range NICHES {
		out = append(out, k)
	}
	return out
}
