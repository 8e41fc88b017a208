package matching

// skillSynonyms maps a canonical skill to terms treated as interchangeable
// with it. Membership is bidirectional: two terms match when both appear in
// the same group (the canonical key counts as a member).
var skillSynonyms = map[string][]string{
	"education":     {"teaching", "mentoring", "tutoring"},
	"health":        {"medical", "clinic", "nursing"},
	"communication": {"storytelling", "content", "public speaking"},
	"logistics":     {"supply", "operations", "coordination"},
	"fundraising":   {"development", "sponsorship", "grant writing"},
}

// HasSynonymMatch reports whether two skill terms are case-insensitively
// equal or co-members of a synonym group.
func HasSynonymMatch(volSkill, oppSkill string) bool {
	a := normalize(volSkill)
	b := normalize(oppSkill)
	if a == b {
		return true
	}
	for key, values := range skillSynonyms {
		inA := key == a
		inB := key == b
		for _, v := range values {
			n := normalize(v)
			if n == a {
				inA = true
			}
			if n == b {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	return false
}
