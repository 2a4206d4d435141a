package chunking_test

import (
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/neviswealth/search-service/pkg/chunking"
)

func TestChunking(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Chunking Suite")
}

var _ = Describe("Chunker", func() {
	It("returns nothing for blank title and content", func() {
		c := chunking.NewChunker(100)
		Expect(c.Chunk("", "")).To(BeEmpty())
		Expect(c.Chunk("  ", " \n\t ")).To(BeEmpty())
	})

	It("emits a non-blank title as its own first chunk", func() {
		c := chunking.NewChunker(100)
		chunks := c.Chunk("Utility bill", "Electricity usage for March.")

		Expect(chunks).To(HaveLen(2))
		Expect(chunks[0].Index).To(Equal(0))
		Expect(chunks[0].Content).To(Equal("Utility bill"))
		Expect(chunks[1].Content).To(Equal("Electricity usage for March."))
	})

	It("emits the title chunk even when content is blank", func() {
		c := chunking.NewChunker(100)
		chunks := c.Chunk("Utility bill", "   ")

		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0].Content).To(Equal("Utility bill"))
	})

	It("does not cap the title chunk", func() {
		c := chunking.NewChunker(5)
		chunks := c.Chunk("a rather long document title", "body")

		Expect(chunks[0].Content).To(Equal("a rather long document title"))
	})

	It("packs small paragraphs into one chunk with blank-line separators", func() {
		c := chunking.NewChunker(100)
		chunks := c.Chunk("", "First paragraph.\n\nSecond paragraph.")

		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0].Content).To(Equal("First paragraph.\n\nSecond paragraph."))
	})

	It("starts a new chunk when a paragraph would overflow the buffer", func() {
		c := chunking.NewChunker(30)
		chunks := c.Chunk("", "aaaaaaaaaaaaaaaaaaaa\n\nbbbbbbbbbbbbbbbbbbbb")

		Expect(chunks).To(HaveLen(2))
		Expect(chunks[0].Content).To(Equal("aaaaaaaaaaaaaaaaaaaa"))
		Expect(chunks[1].Content).To(Equal("bbbbbbbbbbbbbbbbbbbb"))
	})

	It("splits an oversized paragraph at word boundaries", func() {
		c := chunking.NewChunker(20)
		chunks := c.Chunk("", "one two three four five six seven eight nine ten")

		Expect(len(chunks)).To(BeNumerically(">", 1))
		for _, chunk := range chunks {
			Expect(len(chunk.Content)).To(BeNumerically("<=", 20))
		}
	})

	It("never splits a single word longer than maxChars", func() {
		c := chunking.NewChunker(10)
		chunks := c.Chunk("", "supercalifragilisticexpialidocious")

		Expect(chunks).To(HaveLen(1))
		Expect(chunks[0].Content).To(Equal("supercalifragilisticexpialidocious"))
	})

	It("treats runs of whitespace-only lines as paragraph separators", func() {
		c := chunking.NewChunker(10)
		chunks := c.Chunk("", "alpha\n \t \n\n  \nbeta")

		Expect(chunks).To(HaveLen(2))
		Expect(chunks[0].Content).To(Equal("alpha"))
		Expect(chunks[1].Content).To(Equal("beta"))
	})

	It("numbers chunks contiguously from zero for any input", func() {
		c := chunking.NewChunker(25)
		chunks := c.Chunk("Title", strings.Repeat("some words here\n\n", 10))

		for i, chunk := range chunks {
			Expect(chunk.Index).To(Equal(i))
		}
	})

	It("clamps maxChars to at least one", func() {
		c := chunking.NewChunker(-5)
		chunks := c.Chunk("", "a b")

		Expect(chunks).To(HaveLen(2))
		Expect(chunks[0].Content).To(Equal("a"))
		Expect(chunks[1].Content).To(Equal("b"))
	})

	It("keeps every chunk within maxChars barring the oversized-word case", func() {
		content := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 20) +
			"\n\nshort one\n\n" +
			strings.Repeat("sed do eiusmod tempor incididunt ut labore ", 10)
		c := chunking.NewChunker(80)

		for _, chunk := range c.Chunk("", content) {
			Expect(len(chunk.Content)).To(BeNumerically("<=", 80))
		}
	})

	It("round-trips content whose paragraphs fit the cap", func() {
		content := "alpha beta\n\ngamma delta\n\nepsilon"
		c := chunking.NewChunker(80)
		chunks := c.Chunk("", content)

		parts := make([]string, 0, len(chunks))
		for _, chunk := range chunks {
			parts = append(parts, chunk.Content)
		}
		Expect(strings.Join(parts, "\n\n")).To(Equal(content))
	})
})
