// README: TF-IDF lexical index with cosine top-k search over a fixed corpus.
package retrieval

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// FallbackStatement is returned when no corpus statement clears the score
// threshold, so Search never hands back an empty result set.
const FallbackStatement = "General travel knowledge available"

// scoreThreshold filters out statements with negligible lexical overlap.
const scoreThreshold = 0.1

// ErrEmptyCorpus is returned by NewIndex when the corpus has no usable terms.
var ErrEmptyCorpus = errors.New("retrieval: empty corpus")

// Index holds the fixed vocabulary and per-statement term-weight vectors.
// It is immutable after NewIndex and safe for concurrent readers.
type Index struct {
	statements []string
	vocab      map[string]int // term -> vector dimension
	idf        []float64      // inverse document frequency per dimension
	vectors    [][]float64    // per statement, L2-normalized
}

// NewIndex tokenizes the corpus, learns the vocabulary with smoothed inverse
// document frequencies and precomputes a normalized weight vector for every
// statement. The vocabulary is fixed afterwards: query terms outside it are
// ignored, never added. A corpus that yields no terms at all counts as empty.
func NewIndex(corpus []string) (*Index, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	idx := &Index{
		statements: append([]string(nil), corpus...),
		vocab:      make(map[string]int),
	}

	docs := make([][]string, len(corpus))
	for i, stmt := range corpus {
		docs[i] = tokenize(stmt)
		for _, term := range docs[i] {
			if _, ok := idx.vocab[term]; !ok {
				idx.vocab[term] = len(idx.vocab)
			}
		}
	}
	if len(idx.vocab) == 0 {
		return nil, ErrEmptyCorpus
	}

	// Document frequency per term, then smoothed IDF. Terms that appear in
	// most statements are discounted so the distinguishing keywords (a city
	// name, a transport mode) dominate the similarity score.
	df := make([]int, len(idx.vocab))
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				df[idx.vocab[term]]++
			}
		}
	}
	total := float64(len(docs))
	idx.idf = make([]float64, len(idx.vocab))
	for dim, count := range df {
		idx.idf[dim] = math.Log((1+total)/(1+float64(count))) + 1
	}

	idx.vectors = make([][]float64, len(docs))
	for i, doc := range docs {
		idx.vectors[i] = idx.weightVector(doc)
	}
	return idx, nil
}

// Search scores the query against every statement and returns the statements
// for the top-k cosine scores above the threshold, highest first, ties broken
// by corpus order. It never returns an empty slice: when nothing qualifies,
// the fallback statement is returned instead so downstream prompt assembly
// stays well-formed. k values below 1 are treated as 1.
func (idx *Index) Search(query string, k int) []string {
	if k < 1 {
		k = 1
	}
	qvec := idx.weightVector(tokenize(query))

	order := make([]int, len(idx.statements))
	scores := make([]float64, len(idx.statements))
	for i := range idx.statements {
		order[i] = i
		scores[i] = dot(qvec, idx.vectors[i])
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	results := make([]string, 0, k)
	for _, i := range order {
		if len(results) == k || scores[i] <= scoreThreshold {
			break
		}
		results = append(results, idx.statements[i])
	}
	if len(results) == 0 {
		return []string{FallbackStatement}
	}
	return results
}

// weightVector builds the L2-normalized TF-IDF vector for the given tokens.
// Tokens outside the vocabulary are dropped.
func (idx *Index) weightVector(tokens []string) []float64 {
	vec := make([]float64, len(idx.vocab))
	for _, term := range tokens {
		if dim, ok := idx.vocab[term]; ok {
			vec[dim] += idx.idf[dim]
		}
	}
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum > 0 {
		norm := math.Sqrt(sum)
		for dim := range vec {
			vec[dim] /= norm
		}
	}
	return vec
}

// dot of two equal-length vectors. Both sides are L2-normalized, so this is
// the cosine similarity in [0,1].
func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// tokenize lowercases the text and splits it into runs of letters and
// digits. Single-character tokens are dropped; they carry no distinguishing
// weight.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
