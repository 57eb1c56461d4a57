package dupex

// DefaultSentinel marks a missing survey response. Tokens equal to it are
// excluded from clustering and from token output.
const DefaultSentinel = "no response"

// DefaultThreshold is the minimum similarity used when none is configured.
const DefaultThreshold = 0.5

// DefaultStopwords are common English words excluded from document
// vectorization and entity chunking.
var DefaultStopwords = []string{
	"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
	"have", "has", "had", "do", "does", "did", "will", "would", "could",
	"should", "may", "might", "must", "can", "shall", "not", "no",
	"and", "or", "but", "if", "then", "than", "so", "as", "at", "by",
	"for", "from", "in", "into", "of", "on", "to", "with", "about",
	"it", "its", "this", "that", "these", "those", "what", "which",
	"who", "whom", "how", "when", "where", "why", "i", "me", "my",
	"you", "your", "we", "our", "us", "they", "them", "their",
	"he", "him", "his", "she", "her",
}

// DefaultTemplates render one report line per cluster.
var DefaultTemplates = []string{
	"{{representative}} ({{size}}): {{members}}", // ex: gizmo (4): gizmoa, gizmo b, g1mo c
}
