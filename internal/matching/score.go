package matching

import (
	"math"
	"strings"
	"time"

	"volunmatch-backend/internal/domain"
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizeSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if n := normalize(v); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// JaccardScore compares two string sets case-insensitively and returns the
// Jaccard index scaled to [0,100]. An empty set on either side scores a
// neutral 50: absence of data is not treated as a mismatch.
func JaccardScore(a, b []string) int32 {
	if len(a) == 0 || len(b) == 0 {
		return 50
	}
	sa := normalizeSet(a)
	sb := normalizeSet(b)
	intersection := 0
	for v := range sa {
		if _, ok := sb[v]; ok {
			intersection++
		}
	}
	union := len(sb)
	for v := range sa {
		if _, ok := sb[v]; !ok {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return int32(math.Round(float64(intersection) / float64(union) * 100))
}

// AvailabilityScore measures how much of the opportunity window the
// volunteer covers. Any missing bound on either side scores a neutral 80.
// An empty or inverted intersection scores 0.
func AvailabilityScore(volFrom, volTo, oppStart, oppEnd *time.Time) int32 {
	if volFrom == nil || volTo == nil || oppStart == nil || oppEnd == nil {
		return 80
	}
	start := *oppStart
	if volFrom.After(start) {
		start = *volFrom
	}
	end := *oppEnd
	if volTo.Before(end) {
		end = *volTo
	}
	if end.Before(start) {
		return 0
	}
	overlap := end.Sub(start)
	total := oppEnd.Sub(*oppStart)
	if total <= 0 {
		total = 1
	}
	score := int32(math.Round(float64(overlap) / float64(total) * 100))
	if score > 100 {
		return 100
	}
	return score
}

// LanguageScore compares the volunteer's languages against the
// association's. Both sides empty is a neutral 50, one side empty is 60,
// any shared language is 100, otherwise 50.
func LanguageScore(volLanguages, assocLanguages []string) int32 {
	if len(volLanguages) == 0 && len(assocLanguages) == 0 {
		return 50
	}
	if len(volLanguages) == 0 || len(assocLanguages) == 0 {
		return 60
	}
	assoc := normalizeSet(assocLanguages)
	for _, lang := range volLanguages {
		if _, ok := assoc[normalize(lang)]; ok {
			return 100
		}
	}
	return 50
}

// ModalityScore is 100 for an exact modality match, or when the volunteer
// accepts remote work and the opportunity is remote. Mismatches score 70
// in relaxed mode, 50 otherwise.
func ModalityScore(vol, opp domain.Modality, remoteOk, relaxed bool) int32 {
	if vol == opp {
		return 100
	}
	if remoteOk && opp == domain.ModalityRemote {
		return 100
	}
	if relaxed {
		return 70
	}
	return 50
}

// SynonymBonus adds 5 points for every (volunteer skill, opportunity skill)
// pair that is equal or belongs to the same synonym group, capped at 10.
func SynonymBonus(volSkills, oppSkills []string) int32 {
	var bonus int32
	for _, vol := range volSkills {
		for _, opp := range oppSkills {
			if HasSynonymMatch(vol, opp) {
				bonus += 5
			}
		}
	}
	if bonus > 10 {
		return 10
	}
	return bonus
}

// Score computes the weighted compatibility score for a volunteer and an
// opportunity, clamped to [0,100].
func Score(vol *domain.Volunteer, opp *domain.Opportunity, weights domain.MatchWeights, relaxed bool) int32 {
	var volLanguages, assocLanguages []string
	if vol.User != nil {
		volLanguages = vol.User.Languages
	}
	if opp.Association != nil && opp.Association.User != nil {
		assocLanguages = opp.Association.User.Languages
	}

	weighted := weights.Skills*float64(JaccardScore(vol.Skills, opp.RequiredSkills)) +
		weights.Causes*float64(JaccardScore(vol.Causes, opp.Causes)) +
		weights.Availability*float64(AvailabilityScore(vol.AvailableFrom, vol.AvailableTo, opp.StartDate, opp.EndDate)) +
		weights.Language*float64(LanguageScore(volLanguages, assocLanguages)) +
		weights.Modality*float64(ModalityScore(vol.Modality, opp.Modality, vol.RemoteOk, relaxed))

	score := int32(math.Round(weighted + float64(SynonymBonus(vol.Skills, opp.RequiredSkills))))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
