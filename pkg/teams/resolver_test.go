package teams

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kubernetes-sigs/merges2csv/pkg/utils"
)

var testTeamMap = utils.TeamMap{
	"ubuntu-server":    {"foo", "baz"},
	"foundations-bugs": {"bar", "foo"},
	"desktop-packages": {"qux"},
	"unsubscribed":     {"orphan"},
	"server-team":      {"foo"},
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		desc             string
		requested        []string
		mode             Mode
		pkg              string
		expectedLabel    string
		expectedIncluded bool
	}{
		{
			desc:             "single team owning package",
			requested:        []string{"ubuntu-server"},
			pkg:              "foo",
			expectedLabel:    "Server",
			expectedIncluded: true,
		},
		{
			desc:             "single team not owning package",
			requested:        []string{"ubuntu-server"},
			pkg:              "bar",
			expectedLabel:    "",
			expectedIncluded: false,
		},
		{
			desc:             "team without display name uses identifier",
			requested:        []string{"server-team"},
			pkg:              "foo",
			expectedLabel:    "server-team",
			expectedIncluded: true,
		},
		{
			desc:             "labels follow request order",
			requested:        []string{"ubuntu-server", "foundations-bugs"},
			pkg:              "foo",
			expectedLabel:    "Server, Foundations",
			expectedIncluded: true,
		},
		{
			desc:             "all teams sorted by identifier",
			requested:        []string{"all"},
			pkg:              "foo",
			expectedLabel:    "Foundations, server-team, Server",
			expectedIncluded: true,
		},
		{
			desc:             "unsubscribed label is empty",
			requested:        []string{"all"},
			pkg:              "orphan",
			expectedLabel:    "",
			expectedIncluded: true,
		},
		{
			desc:             "any mode includes when an earlier team matches",
			requested:        []string{"foundations-bugs", "desktop-packages"},
			mode:             ModeAny,
			pkg:              "bar",
			expectedLabel:    "Foundations",
			expectedIncluded: true,
		},
		{
			desc:             "last mode only looks at the final team",
			requested:        []string{"foundations-bugs", "desktop-packages"},
			mode:             ModeLast,
			pkg:              "bar",
			expectedLabel:    "Foundations",
			expectedIncluded: false,
		},
		{
			desc:             "last mode includes when the final team matches",
			requested:        []string{"foundations-bugs", "desktop-packages"},
			mode:             ModeLast,
			pkg:              "qux",
			expectedLabel:    "Desktop",
			expectedIncluded: true,
		},
		{
			desc:             "duplicate requests are ignored",
			requested:        []string{"ubuntu-server", "ubuntu-server"},
			pkg:              "baz",
			expectedLabel:    "Server",
			expectedIncluded: true,
		},
	}
	for _, testCase := range testCases {
		mode := testCase.mode
		if mode == "" {
			mode = ModeAny
		}
		resolver, err := NewResolver(testTeamMap, DefaultDisplayNames(), testCase.requested, mode)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", testCase.desc, err)
		}
		label, included := resolver.Resolve(testCase.pkg)
		if label != testCase.expectedLabel {
			t.Errorf("%s: expected label %q, got %q", testCase.desc, testCase.expectedLabel, label)
		}
		if included != testCase.expectedIncluded {
			t.Errorf("%s: expected included %v, got %v", testCase.desc, testCase.expectedIncluded, included)
		}
	}
}

func TestResolveNil(t *testing.T) {
	var resolver *Resolver
	label, included := resolver.Resolve("anything")
	if label != "" || !included {
		t.Errorf("nil resolver should include everything, got %q %v", label, included)
	}
}

func TestNewResolverUnknownTeam(t *testing.T) {
	_, err := NewResolver(testTeamMap, DefaultDisplayNames(), []string{"ubuntu-server", "nope"}, ModeAny)
	var unknown *UnknownTeamError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTeamError, got %v", err)
	}
	if diff := cmp.Diff([]string{"nope"}, unknown.Unknown); diff != "" {
		t.Errorf("unexpected unknown teams (-want +got):\n%s", diff)
	}
	expectedKnown := []string{"desktop-packages", "foundations-bugs", "server-team", "ubuntu-server", "unsubscribed"}
	if diff := cmp.Diff(expectedKnown, unknown.Known); diff != "" {
		t.Errorf("unexpected known teams (-want +got):\n%s", diff)
	}
}

func TestResolverTeams(t *testing.T) {
	resolver, err := NewResolver(testTeamMap, nil, []string{"ubuntu-server", "all"}, ModeAny)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"ubuntu-server", "desktop-packages", "foundations-bugs", "server-team", "unsubscribed"}
	if diff := cmp.Diff(expected, resolver.Teams()); diff != "" {
		t.Errorf("unexpected teams (-want +got):\n%s", diff)
	}
}

func TestDisplayNames(t *testing.T) {
	names := MergeDisplayNames(DefaultDisplayNames(), utils.DisplayNames{"ubuntu-server": "Server Team", "new-team": "New"})
	testCases := []struct {
		team     string
		expected string
	}{
		{"ubuntu-server", "Server Team"},
		{"new-team", "New"},
		{"desktop-packages", "Desktop"},
		{"unsubscribed", ""},
		{"raw-team", "raw-team"},
	}
	for _, testCase := range testCases {
		if got := Label(names, testCase.team); got != testCase.expected {
			t.Errorf("label for %s: expected %q, got %q", testCase.team, testCase.expected, got)
		}
	}
	if got := Label(DefaultDisplayNames(), "ubuntu-server"); got != "Server" {
		t.Errorf("defaults were modified by merge, got %q", got)
	}
}

func TestParseMode(t *testing.T) {
	for input, expected := range map[string]Mode{"": ModeAny, "any": ModeAny, "last": ModeLast} {
		got, err := ParseMode(input)
		if err != nil || got != expected {
			t.Errorf("ParseMode(%q): expected %q, got %q, %v", input, expected, got, err)
		}
	}
	if _, err := ParseMode("first"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}
