package timeusage

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupAveragesSingleGroup(t *testing.T) {
	// Two working active males: primaryNeeds (10+8)/2=9.0, work (8+7)/2=7.5,
	// other (5+7)/2=6.0
	summaries := []Summary{
		{Working: LabelWorking, Sex: LabelMale, Age: LabelActive, PrimaryNeeds: 10, Work: 8, Other: 5},
		{Working: LabelWorking, Sex: LabelMale, Age: LabelActive, PrimaryNeeds: 8, Work: 7, Other: 7},
	}

	groups := GroupAverages(summaries)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, LabelWorking, g.Working)
	assert.Equal(t, LabelMale, g.Sex)
	assert.Equal(t, LabelActive, g.Age)
	assert.Equal(t, 9.0, g.PrimaryNeeds)
	assert.Equal(t, 7.5, g.Work)
	assert.Equal(t, 6.0, g.Other)
}

func TestGroupAveragesRoundsToOneDecimal(t *testing.T) {
	// mean 8.25 rounds to 8.3 (ties away from zero)
	summaries := []Summary{
		{Working: LabelWorking, Sex: LabelMale, Age: LabelActive, PrimaryNeeds: 8.5, Work: 8, Other: 6},
		{Working: LabelWorking, Sex: LabelMale, Age: LabelActive, PrimaryNeeds: 8.0, Work: 9, Other: 7},
	}

	groups := GroupAverages(summaries)
	require.Len(t, groups, 1)
	assert.Equal(t, 8.3, groups[0].PrimaryNeeds)
	assert.Equal(t, 8.5, groups[0].Work)
	assert.Equal(t, 6.5, groups[0].Other)
}

func TestGroupAveragesOrdering(t *testing.T) {
	summaries := []Summary{
		{Working: LabelWorking, Sex: LabelMale, Age: LabelYoung, PrimaryNeeds: 9, Work: 8, Other: 5},
		{Working: LabelNotWorking, Sex: LabelFemale, Age: LabelElder, PrimaryNeeds: 11, Work: 0, Other: 10},
		{Working: LabelWorking, Sex: LabelFemale, Age: LabelActive, PrimaryNeeds: 10, Work: 7, Other: 6},
		{Working: LabelWorking, Sex: LabelMale, Age: LabelActive, PrimaryNeeds: 9, Work: 8, Other: 6},
		{Working: LabelNotWorking, Sex: LabelMale, Age: LabelElder, PrimaryNeeds: 12, Work: 0, Other: 9},
	}

	groups := GroupAverages(summaries)
	require.Len(t, groups, 5)

	sorted := sort.SliceIsSorted(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Working != b.Working {
			return a.Working < b.Working
		}
		if a.Sex != b.Sex {
			return a.Sex < b.Sex
		}
		return a.Age < b.Age
	})
	assert.True(t, sorted)

	// "not working" < "working" lexicographically
	assert.Equal(t, LabelNotWorking, groups[0].Working)
	assert.Equal(t, LabelWorking, groups[len(groups)-1].Working)
}

func TestGroupAveragesIdempotent(t *testing.T) {
	summaries := []Summary{
		{Working: LabelWorking, Sex: LabelMale, Age: LabelActive, PrimaryNeeds: 10.25, Work: 8, Other: 5},
		{Working: LabelWorking, Sex: LabelFemale, Age: LabelYoung, PrimaryNeeds: 9.75, Work: 7, Other: 6},
		{Working: LabelNotWorking, Sex: LabelFemale, Age: LabelElder, PrimaryNeeds: 11.5, Work: 0, Other: 10},
	}

	first := GroupAverages(summaries)
	second := GroupAverages(summaries)
	assert.Equal(t, first, second)
}

func TestGroupAveragesEmptyInput(t *testing.T) {
	assert.Empty(t, GroupAverages(nil))
	assert.Empty(t, GroupAverages([]Summary{}))
}

func TestGroupAveragesSkipsEmptyPartitions(t *testing.T) {
	// only one of the 12 possible demographic combinations appears
	summaries := []Summary{
		{Working: LabelWorking, Sex: LabelMale, Age: LabelActive, PrimaryNeeds: 9, Work: 8, Other: 5},
	}
	groups := GroupAverages(summaries)
	assert.Len(t, groups, 1)
}
