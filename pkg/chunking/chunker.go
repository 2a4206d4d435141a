// Package chunking splits document text into bounded retrievable units.
// A document is cut on paragraph boundaries and paragraphs are packed
// greedily into chunks capped at a max character length.
package chunking

import (
	"regexp"
	"strings"
)

// paragraphSep matches any run of whitespace-only lines between paragraphs.
var paragraphSep = regexp.MustCompile(`\n\s*\n`)

// Chunk is one bounded slice of a document's text. Index is the 0-based
// position of the chunk in emission order.
type Chunk struct {
	Index   int
	Content string
}

// Chunker produces chunks capped at maxChars characters. The title chunk
// and a single word longer than maxChars are the only chunks that may
// exceed the cap.
type Chunker struct {
	maxChars int
}

func NewChunker(maxChars int) *Chunker {
	if maxChars < 1 {
		maxChars = 1
	}
	return &Chunker{maxChars: maxChars}
}

// Chunk splits title and content into ordered chunks. A non-blank title is
// always emitted as its own first chunk, never merged with body paragraphs.
func (c *Chunker) Chunk(title, content string) []Chunk {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	var chunks []Chunk
	if title != "" {
		chunks = append(chunks, Chunk{Index: 0, Content: title})
	}
	if content == "" {
		return chunks
	}

	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, Chunk{Index: len(chunks), Content: current.String()})
			current.Reset()
		}
	}

	for _, raw := range paragraphSep.Split(content, -1) {
		paragraph := strings.TrimSpace(raw)
		if paragraph == "" {
			continue
		}

		if len(paragraph) > c.maxChars {
			// An oversized paragraph never shares a chunk with pending text.
			flush()
			for _, piece := range c.splitLongParagraph(paragraph) {
				chunks = append(chunks, Chunk{Index: len(chunks), Content: piece})
			}
			continue
		}

		// +2 accounts for the \n\n separator between packed paragraphs.
		if current.Len() > 0 && current.Len()+2+len(paragraph) > c.maxChars {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(paragraph)
	}

	flush()
	return chunks
}

// splitLongParagraph packs whitespace-delimited words into pieces not
// exceeding maxChars. A single word longer than maxChars is kept whole and
// becomes an oversized piece on its own.
func (c *Chunker) splitLongParagraph(paragraph string) []string {
	var pieces []string
	var builder strings.Builder

	for _, word := range strings.Fields(paragraph) {
		if builder.Len() == 0 {
			builder.WriteString(word)
			continue
		}
		if builder.Len()+1+len(word) > c.maxChars {
			pieces = append(pieces, builder.String())
			builder.Reset()
			builder.WriteString(word)
		} else {
			builder.WriteByte(' ')
			builder.WriteString(word)
		}
	}
	if builder.Len() > 0 {
		pieces = append(pieces, builder.String())
	}
	return pieces
}
