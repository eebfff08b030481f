package speakify

// Chunk is a synthesizer-sized slice of the normalized text. Offsets
// are code points; TransStart/TransEnd address the normalized text,
// OrigStart/OrigEnd the original input, so a player can keep
// highlighting across chunk boundaries.
type Chunk struct {
	Text       string
	TransStart int
	TransEnd   int
	OrigStart  int
	OrigEnd    int
}

// Split cuts the mapped text into chunks of at most maxRunes code
// points each. Cuts prefer newline boundaries, then sentence ends,
// then fall back to a hard cut. maxRunes <= 0 yields a single chunk.
func Split(m *CharMap, maxRunes int) []Chunk {
	runes := []rune(m.Transformed())
	if len(runes) == 0 {
		return nil
	}
	if maxRunes <= 0 || len(runes) <= maxRunes {
		o0, o1 := m.OriginalRange(0, len(runes))
		return []Chunk{{
			Text:     m.Transformed(),
			TransEnd: len(runes),
			OrigStart: o0, OrigEnd: o1,
		}}
	}

	newlines, sentences := splitPoints(runes)

	var chunks []Chunk
	start := 0
	for start < len(runes) {
		end := start + maxRunes
		if end >= len(runes) {
			end = len(runes)
		} else {
			cut := lastPointIn(newlines, start, end)
			if cut < 0 {
				cut = lastPointIn(sentences, start, end)
			}
			if cut > start {
				end = cut
			}
		}

		text := string(runes[start:end])
		o0, o1 := m.OriginalRange(start, end)
		chunks = append(chunks, Chunk{
			Text:       text,
			TransStart: start,
			TransEnd:   end,
			OrigStart:  o0,
			OrigEnd:    o1,
		})
		start = end
	}
	return chunks
}

// splitPoints collects cut candidates: offsets right after newlines and
// after sentence-ending punctuation followed by a space.
func splitPoints(runes []rune) (newlines, sentences []int) {
	for i, r := range runes {
		if r == '\n' {
			newlines = append(newlines, i+1)
			continue
		}
		if (r == '.' || r == '!' || r == '?') &&
			i+1 < len(runes) && runes[i+1] == ' ' {
			sentences = append(sentences, i+2)
		}
	}
	return newlines, sentences
}

// lastPointIn returns the largest point in (start, end], or -1.
func lastPointIn(points []int, start, end int) int {
	best := -1
	for _, pt := range points {
		if pt <= start {
			continue
		}
		if pt > end {
			break
		}
		best = pt
	}
	return best
}
