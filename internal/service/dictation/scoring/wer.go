package scoring

// WERResult holds sequence-alignment statistics for an attempt. Unlike Score
// it resynchronizes after inserted or omitted words, so it tells a missing
// word apart from a run of misspellings.
type WERResult struct {
	WER           float64 // (S + I + D) / reference words; 0 for an empty reference
	Substitutions int
	Insertions    int
	Deletions     int
	Matches       int
	RefWords      int
}

// WordErrorRate computes the word error rate between the tokenized reference
// and user texts using minimum edit distance over whole tokens.
func WordErrorRate(reference, user string) WERResult {
	refWords := Tokenize(reference)
	hypWords := Tokenize(user)

	n := len(refWords)
	if n == 0 {
		return WERResult{Insertions: len(hypWords)}
	}

	m := len(hypWords)

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if refWords[i-1] == hypWords[j-1] {
				d[i][j] = d[i-1][j-1]
				continue
			}
			d[i][j] = 1 + min(d[i-1][j-1], d[i-1][j], d[i][j-1])
		}
	}

	var res WERResult
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && refWords[i-1] == hypWords[j-1]:
			res.Matches++
			i--
			j--
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+1:
			res.Substitutions++
			i--
			j--
		case i > 0 && d[i][j] == d[i-1][j]+1:
			res.Deletions++
			i--
		default:
			res.Insertions++
			j--
		}
	}

	res.RefWords = n
	res.WER = RoundScore(float64(res.Substitutions+res.Insertions+res.Deletions) / float64(n))

	return res
}
