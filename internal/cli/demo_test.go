package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestRunDemo(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	err := runDemo(context.Background(), &buf, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	if err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}
	output := buf.String()
	for _, want := range []string{
		"Created election 1: Student Council (President)",
		"rejected (InvalidSchedule): Election starting date must be in the future",
		"rejected (RegistrationClosed)",
		"rejected (AlreadyVoted): voter-x has already voted in election 1",
		"rejected (VotingClosed)",
		"Total votes: 2",
		"ElectionCreated{election: 1} by deployer",
		"CandidateAdded{election: 1, candidate: 2} by deployer",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q\n%s", want, output)
		}
	}
	if strings.Contains(output, "✗") {
		t.Errorf("demo reported an unexpected outcome:\n%s", output)
	}
}
