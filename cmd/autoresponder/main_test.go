package main

import "testing"

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "whitespace", input: "   ", want: nil},
		{name: "single", input: "Leads_New", want: []string{"Leads_New"}},
		{name: "multiple", input: "Leads_New, Event_Changes", want: []string{"Leads_New", "Event_Changes"}},
		{name: "stray commas", input: ",Leads_New,,", want: []string{"Leads_New"}},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			got := splitList(tc.input)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}
