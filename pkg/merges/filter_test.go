package merges

import (
	"testing"

	"github.com/kubernetes-sigs/merges2csv/pkg/version"
)

func TestShouldEmit(t *testing.T) {
	testCases := []struct {
		ordering     version.Ordering
		excludeSame  bool
		teamIncluded bool
		expected     bool
	}{
		{version.Less, true, true, true},
		{version.Equal, true, true, false},
		{version.Greater, true, true, false},
		{version.Less, true, false, false},
		{version.Equal, false, true, true},
		{version.Greater, false, true, true},
		{version.Greater, false, false, false},
	}
	for _, testCase := range testCases {
		got := ShouldEmit(testCase.ordering, testCase.excludeSame, testCase.teamIncluded)
		if got != testCase.expected {
			t.Errorf("ShouldEmit(%q, %v, %v): expected %v, got %v",
				testCase.ordering, testCase.excludeSame, testCase.teamIncluded, testCase.expected, got)
		}
	}
}
