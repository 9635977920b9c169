package spirits

// Match reports whether candidate matches pattern.
func Match[P Like](pattern P, candidate string) bool {
	return From(pattern).Match(candidate)
}

// match runs a single forward scan over candidate with one backtrack
// checkpoint, recorded at the most recent '*' whose following character lined
// up with the candidate. On a later literal mismatch the scan resumes from the
// checkpoint with the '*' absorbing one more candidate character.
//
// Worst case is O(len(pattern) * len(candidate)).
func match(pattern, candidate []rune) bool {
	if len(candidate) == 0 {
		return false
	}

	p, c := 0, 0
	resumeP, resumeC := -1, -1

	for ; p < len(pattern) && c < len(candidate); c++ {
		switch pattern[p] {
		case '*':
			if p+1 == len(pattern) {
				return true
			}
			if pattern[p+1] == candidate[c] {
				resumeP, resumeC = p, c
				p += 2
			}
		case '.', '?':
			p++
		case '\\':
			if p+1 < len(pattern) && pattern[p+1] == candidate[c] {
				p += 2
			} else {
				return false
			}
		default:
			switch {
			case pattern[p] == candidate[c]:
				p++
			case resumeP >= 0:
				p, c = resumeP, resumeC
			default:
				return false
			}
		}
	}

	// A trailing '?' may be absent.
	if p == len(pattern)-1 && pattern[p] == '?' {
		p++
	}

	return p == len(pattern) && c == len(candidate)
}
