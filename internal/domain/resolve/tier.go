package resolve

// Tier classifies how a match was found, ordered by descending confidence
// and ascending cost. Tiers are tried in this order and the first success
// wins — a later tier never overrides an earlier one.
type Tier int

const (
	// TierExact is a byte-for-byte id match.
	TierExact Tier = iota

	// TierNormalized matches after both ids are reduced to comparison keys.
	TierNormalized

	// TierCaseInsensitive matches on raw lowercase forms before full
	// normalization. Reported separately so operators can tell pure case
	// drift apart from structural drift (hyphen/underscore changes).
	TierCaseInsensitive

	// TierFuzzy matches by bounded edit distance between comparison keys.
	TierFuzzy

	// TierNone means no tier succeeded.
	TierNone
)

var tierNames = map[Tier]string{
	TierExact:           "exact",
	TierNormalized:      "normalized",
	TierCaseInsensitive: "case_insensitive",
	TierFuzzy:           "fuzzy",
	TierNone:            "none",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "unknown"
}

// Matched reports whether the tier represents a successful match.
func (t Tier) Matched() bool { return t != TierNone }
