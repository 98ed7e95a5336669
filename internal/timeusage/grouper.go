package timeusage

import (
	"math"
	"sort"
)

// GroupAverages partitions summaries by (employment, sex, age) and emits
// one row per non-empty partition with the mean hours per bucket, rounded
// to one decimal with ties away from zero. Output is sorted ascending by
// the three labels, so the result is deterministic and idempotent for a
// fixed input multiset.
func GroupAverages(summaries []Summary) []GroupAverage {
	type accumulator struct {
		primaryNeeds float64
		work         float64
		other        float64
		count        int
	}

	groups := make(map[GroupKey]*accumulator)
	for _, s := range summaries {
		key := GroupKey{Working: s.Working, Sex: s.Sex, Age: s.Age}
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{}
			groups[key] = acc
		}
		acc.primaryNeeds += s.PrimaryNeeds
		acc.work += s.Work
		acc.other += s.Other
		acc.count++
	}

	averages := make([]GroupAverage, 0, len(groups))
	for key, acc := range groups {
		n := float64(acc.count)
		averages = append(averages, GroupAverage{
			Working:      key.Working,
			Sex:          key.Sex,
			Age:          key.Age,
			PrimaryNeeds: round1(acc.primaryNeeds / n),
			Work:         round1(acc.work / n),
			Other:        round1(acc.other / n),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		a, b := averages[i], averages[j]
		if a.Working != b.Working {
			return a.Working < b.Working
		}
		if a.Sex != b.Sex {
			return a.Sex < b.Sex
		}
		return a.Age < b.Age
	})

	return averages
}

// round1 rounds to one decimal, ties away from zero
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
