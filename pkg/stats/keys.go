package stats

// Key is the canonical identifier of a tracked player attribute.
type Key string

// Value stats. Start at 10 and represent aspirational qualities.
const (
	IndependencePatriotism  Key = "independence_patriotism"
	UnitySolidarity         Key = "unity_solidarity"
	JusticeResponsibility   Key = "justice_responsibility"
	LawOrder                Key = "law_order"
	HardworkProfessionalism Key = "hardwork_professionalism"
	CreativityInnovation    Key = "creativity_innovation"
)

// Problem stats. Start at 0; reaching 100 ends the game.
const (
	DrugAddiction      Key = "drug_addiction"
	GamblingAddiction  Key = "gambling_addiction"
	Vandalism          Key = "vandalism"
	ReligiousExtremism Key = "religious_extremism"
	Bullying           Key = "bullying"
	Violence           Key = "violence"
	Wastefulness       Key = "wastefulness"
)

// Values lists the value stats in declaration order.
var Values = []Key{
	IndependencePatriotism,
	UnitySolidarity,
	JusticeResponsibility,
	LawOrder,
	HardworkProfessionalism,
	CreativityInnovation,
}

// Problems lists the problem stats in declaration order. Game-over
// evaluation iterates this slice, so the order is the canonical
// tie-break when several stats reach 100 in the same turn.
var Problems = []Key{
	DrugAddiction,
	GamblingAddiction,
	Vandalism,
	ReligiousExtremism,
	Bullying,
	Violence,
	Wastefulness,
}

// aliases maps key spellings the model is known to produce
// to canonical keys.
var aliases = map[string]Key{
	"hard_work_professionalism":     HardworkProfessionalism,
	"hard_work_and_professionalism": HardworkProfessionalism,
	"work_ethic_professionalism":    HardworkProfessionalism,
	"professionalism":               HardworkProfessionalism,
	"creation_innovation":           CreativityInnovation,
	"creation_and_innovation":       CreativityInnovation,
	"justice_and_responsibility":    JusticeResponsibility,
	"responsibility":                JusticeResponsibility,
	"law_and_order":                 LawOrder,
	"unity_and_solidarity":          UnitySolidarity,
	"solidarity":                    UnitySolidarity,
	"independence_and_patriotism":   IndependencePatriotism,
}

var canonical = func() map[Key]bool {
	m := make(map[Key]bool, len(Values)+len(Problems))
	for _, k := range Values {
		m[k] = true
	}
	for _, k := range Problems {
		m[k] = true
	}
	return m
}()

// Resolve maps a raw key string from the model to a canonical key.
// It returns false when the key is not canonical and has no alias.
func Resolve(raw string) (Key, bool) {
	if k, ok := aliases[raw]; ok {
		return k, true
	}
	k := Key(raw)
	if canonical[k] {
		return k, true
	}
	return "", false
}
