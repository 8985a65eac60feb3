// Package lexicon holds the static word lists used for bias classification,
// ad detection, and summarization. All entries are lowercase and the lists
// are read-only after initialization.
package lexicon

// LeftSources lists outlets commonly rated left-leaning.
var LeftSources = []string{
	"cnn", "msnbc", "nbc", "abc", "cbs", "new york times", "nyt", "washington post",
	"huffpost", "huffington post", "vox", "slate", "the guardian", "mother jones",
	"the atlantic", "politico", "buzzfeed", "daily beast", "time magazine",
}

// RightSources lists outlets commonly rated right-leaning.
var RightSources = []string{
	"fox news", "breitbart", "the daily caller", "the blaze", "newsmax", "oann",
	"new york post", "washington times", "washington examiner", "national review",
	"the federalist", "daily wire", "epoch times", "townhall",
}

// CenterSources lists outlets commonly rated centrist.
var CenterSources = []string{
	"reuters", "associated press", "ap", "bloomberg", "the hill", "axios", "c-span",
	"bbc", "financial times", "wall street journal", "wsj", "usa today", "christian science monitor",
}

// LeftTerms are emotionally charged terms associated with left-leaning framing.
var LeftTerms = []string{
	"progressive", "liberal", "equality", "reform", "social justice", "climate crisis",
	"systemic", "marginalized", "diversity", "inclusive", "privilege", "rights",
	"undocumented", "gun control", "universal healthcare", "green new deal",
}

// RightTerms are emotionally charged terms associated with right-leaning framing.
var RightTerms = []string{
	"conservative", "traditional", "freedom", "patriot", "taxpayer", "illegal alien",
	"border security", "law and order", "family values", "religious liberty",
	"second amendment", "pro-life", "socialism", "radical", "woke", "cancel culture",
}

// AdIndicators are phrases that mark promotional content. Matched
// case-insensitively as substrings of title, snippet, source, or page content.
var AdIndicators = []string{
	"sponsored", "advertisement", "promoted", "buy now", "limited time offer",
	"discount", "sale", "% off", "click here", "shop now", "subscribe now",
	"special offer", "promotion", "deal", "best price", "free shipping",
}

// CommerceURLHints are URL substrings that suggest a commerce page rather
// than a news article.
var CommerceURLHints = []string{
	"product", "shop", "buy", "offer", "deal", "sale", "discount",
}

// ReputableOutlets boost an article's relevance rating. Matched against the
// source name as reported by the provider (not lowercased).
var ReputableOutlets = []string{
	"BBC News", "CNN", "The New York Times", "Reuters", "Associated Press",
}

// FillerPhrases are removed during sentence compression.
var FillerPhrases = []string{
	"in other words", "as a matter of fact", "at the present time",
	"due to the fact that", "for the purpose of", "in order to",
	"in the event that", "it should be noted that", "the fact that",
}

// stopWords is the closed English stop-word list used by the similarity
// engine and keyword extractor.
var stopWords = map[string]struct{}{}

var stopWordList = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "your",
	"yours", "yourself", "yourselves", "he", "him", "his", "himself", "she",
	"her", "hers", "herself", "it", "its", "itself", "they", "them", "their",
	"theirs", "themselves", "what", "which", "who", "whom", "this", "that",
	"these", "those", "am", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "having", "do", "does", "did", "doing", "a", "an",
	"the", "and", "but", "if", "or", "because", "as", "until", "while", "of",
	"at", "by", "for", "with", "about", "against", "between", "into", "through",
	"during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all", "any",
	"both", "each", "few", "more", "most", "other", "some", "such", "no",
	"nor", "not", "only", "own", "same", "so", "than", "too", "very", "s",
	"t", "can", "will", "just", "don", "should", "now",
}

func init() {
	for _, w := range stopWordList {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether a lowercase word is in the stop-word list.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}
