package election

// CandidateVotes is the tally input for one candidate.
type CandidateVotes struct {
	CandidateID int64
	VoteCount   int64
}

// Tally summarises the votes of one election.
type Tally struct {
	TotalVotes int64
	// LeaderIDs holds every candidate sharing the highest count, in
	// registration order. Empty while no vote has been cast.
	LeaderIDs []int64
}

// ComputeTally sums votes and finds the leading candidates.
func ComputeTally(candidates []CandidateVotes) Tally {
	var t Tally
	var best int64
	for _, c := range candidates {
		t.TotalVotes += c.VoteCount
		if c.VoteCount > best {
			best = c.VoteCount
		}
	}
	if best == 0 {
		return t
	}
	for _, c := range candidates {
		if c.VoteCount == best {
			t.LeaderIDs = append(t.LeaderIDs, c.CandidateID)
		}
	}
	return t
}

// Share returns votes as a percentage of total, 0 when total is 0.
func Share(votes, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(votes) * 100 / float64(total)
}
