package cmd

import (
	"flag"
	"slices"
	"testing"
)

// flagNames lists the flags defined on fs.
func flagNames(fs *flag.FlagSet) []string {
	var names []string
	fs.VisitAll(func(f *flag.Flag) { names = append(names, f.Name) })
	slices.Sort(names)
	return names
}

func TestCompletion_MatchesFlags(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		sub, ok := c.Sub[cmd.Name()]
		if !ok {
			t.Errorf("%s is not completed", cmd.Name())
			continue
		}
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)

		var completed []string
		for name := range sub.Flags {
			completed = append(completed, name)
		}
		slices.Sort(completed)
		if want := flagNames(fs); !slices.Equal(completed, want) {
			t.Errorf("%s completes flags %q, want %q", cmd.Name(), completed, want)
		}
	}

	fs := flag.NewFlagSet("spf", flag.ContinueOnError)
	newGlobalFlags(fs)
	var completed []string
	for name := range c.Flags {
		completed = append(completed, name)
	}
	slices.Sort(completed)
	if want := flagNames(fs); !slices.Equal(completed, want) {
		t.Errorf("global flags completed %q, want %q", completed, want)
	}
}

func TestCompletion_DividendsPeriods(t *testing.T) {
	p, ok := Completion().Sub["dividends"].Flags["p"]
	if !ok {
		t.Fatal("dividends -p is not completed")
	}
	got := p.Predict("")
	for _, want := range []string{"day", "week", "month", "quarter", "year"} {
		if !slices.Contains(got, want) {
			t.Errorf("dividends -p completes %q, missing %q", got, want)
		}
	}
}
