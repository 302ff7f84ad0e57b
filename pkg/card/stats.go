package card

// RecentWindow is the number of most recent answers the recent counters cover.
const RecentWindow = 20

// Stats tracks lifetime answer totals and the recent answer window.
type Stats struct {
	Know            int `json:"know"`
	DontKnow        int `json:"dontKnow"`
	RecentKnows     int `json:"RecentKnows"`
	RecentDontKnows int `json:"RecentDontKnows"`
}

// Record returns the stats after one more answer.
//
// Lifetime totals always grow. While the recent window is filling the matching
// recent counter grows; once it is full the answer displaces one of the other
// kind, saturating at RecentWindow. This approximates a last-20 FIFO without
// keeping the answer history and can drift from a true FIFO on alternating
// sequences.
func (s Stats) Record(known bool) Stats {
	if known {
		s.Know++
	} else {
		s.DontKnow++
	}

	k, d := clampRecent(s.RecentKnows), clampRecent(s.RecentDontKnows)
	if k+d < RecentWindow {
		if known {
			k++
		} else {
			d++
		}
		s.RecentKnows, s.RecentDontKnows = k, d
		return s
	}

	if known {
		if k < RecentWindow {
			k++
		}
		if d > 0 {
			d--
		}
	} else {
		if d < RecentWindow {
			d++
		}
		if k > 0 {
			k--
		}
	}
	// Counters loaded from a corrupt record can start above the window.
	if over := k + d - RecentWindow; over > 0 {
		if known {
			d = max(d-over, 0)
		} else {
			k = max(k-over, 0)
		}
	}
	s.RecentKnows, s.RecentDontKnows = k, d
	return s
}

// RecentTotal is the number of answers in the recent window.
func (s Stats) RecentTotal() int {
	return clampRecent(s.RecentKnows) + clampRecent(s.RecentDontKnows)
}

func clampRecent(n int) int {
	switch {
	case n < 0:
		return 0
	case n > RecentWindow:
		return RecentWindow
	default:
		return n
	}
}

// sanitized clamps counters read from storage into their valid ranges.
func (s Stats) sanitized() Stats {
	s.Know = max(s.Know, 0)
	s.DontKnow = max(s.DontKnow, 0)
	s.RecentKnows = clampRecent(s.RecentKnows)
	s.RecentDontKnows = clampRecent(s.RecentDontKnows)
	if over := s.RecentKnows + s.RecentDontKnows - RecentWindow; over > 0 {
		s.RecentKnows -= over
	}
	return s
}
