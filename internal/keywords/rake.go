// Package keywords ranks candidate phrases with RAKE (Rapid Automatic Keyword
// Extraction): phrases are runs of words between stop words and punctuation,
// each word scores degree/frequency and a phrase scores the sum of its words.
package keywords

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/samber/lo"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

const STOPWORDS_LANG = "en"

// NLTK_STOPWORDS is the NLTK English list. It replaces the bundled English
// list, which lacks pronouns and the fragments left when contractions are
// split on the apostrophe.
const NLTK_STOPWORDS = "i,me,my,myself,we,our,ours,ourselves,you,you're,you've,you'll,you'd," +
	"your,yours,yourself,yourselves,he,him,his,himself,she,she's,her,hers,herself," +
	"it,it's,its,itself,they,them,their,theirs,themselves,what,which,who,whom," +
	"this,that,that'll,these,those,am,is,are,was,were,be,been,being," +
	"have,has,had,having,do,does,did,doing,a,an,the,and,but,if,or,because,as,until,while," +
	"of,at,by,for,with,about,against,between,into,through,during,before,after,above,below," +
	"to,from,up,down,in,out,on,off,over,under,again,further,then,once,here,there,when,where," +
	"why,how,all,any,both,each,few,more,most,other,some,such,no,nor,not,only,own,same,so," +
	"than,too,very,s,t,can,will,just,don,don't,should,should've,now,d,ll,m,o,re,ve,y," +
	"ain,aren,aren't,couldn,couldn't,didn,didn't,doesn,doesn't,hadn,hadn't,hasn,hasn't," +
	"haven,haven't,isn,isn't,ma,mightn,mightn't,mustn,mustn't,needn,needn't,shan,shan't," +
	"shouldn,shouldn't,wasn,wasn't,weren,weren't,won,won't,wouldn,wouldn't"

var loadStopwords sync.Once

var wordPunctPattern = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s]+`)

type RankedPhrase struct {
	Phrase string
	Score  float64
}

type Ranker struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewRanker() (*Ranker, error) {
	loadStopwords.Do(func() {
		stopwords.DontStripDigits()
		stopwords.LoadStopWordsFromString(NLTK_STOPWORDS, STOPWORDS_LANG, ",")
	})

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence tokenizer: %w", err)
	}
	return &Ranker{tokenizer: tokenizer}, nil
}

// RankedPhrases returns every distinct candidate phrase, best first.
func (r *Ranker) RankedPhrases(text string) []string {
	return lo.Map(r.Rank(text), func(p RankedPhrase, _ int) string {
		return p.Phrase
	})
}

func (r *Ranker) Rank(text string) []RankedPhrase {
	phrases := r.candidatePhrases(text)
	if len(phrases) == 0 {
		return nil
	}

	frequency := make(map[string]float64)
	degree := make(map[string]float64)
	for _, phrase := range phrases {
		for _, word := range phrase {
			frequency[word]++
			degree[word] += float64(len(phrase))
		}
	}

	seen := make(map[string]bool, len(phrases))
	ranked := make([]RankedPhrase, 0, len(phrases))
	for _, phrase := range phrases {
		joined := strings.Join(phrase, " ")
		if seen[joined] {
			continue
		}
		seen[joined] = true

		var score float64
		for _, word := range phrase {
			score += degree[word] / frequency[word]
		}
		ranked = append(ranked, RankedPhrase{Phrase: joined, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Phrase > ranked[j].Phrase
	})

	return ranked
}

// candidatePhrases splits every sentence on stop words and punctuation.
// Repeated phrases are kept so they weigh into the word statistics.
func (r *Ranker) candidatePhrases(text string) [][]string {
	stopCache := make(map[string]bool)
	isStop := func(word string) bool {
		stop, ok := stopCache[word]
		if !ok {
			stop = strings.TrimSpace(stopwords.CleanString(word, STOPWORDS_LANG, false)) == ""
			stopCache[word] = stop
		}
		return stop
	}

	var phrases [][]string
	for _, sentence := range r.tokenizer.Tokenize(text) {
		var current []string
		for _, token := range wordPunctPattern.FindAllString(strings.ToLower(sentence.Text), -1) {
			if isPunctuation(token) || isStop(token) {
				if len(current) > 0 {
					phrases = append(phrases, current)
					current = nil
				}
				continue
			}
			current = append(current, token)
		}
		if len(current) > 0 {
			phrases = append(phrases, current)
		}
	}
	return phrases
}

func isPunctuation(token string) bool {
	return !strings.ContainsFunc(token, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}
