package inmemory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/neviswealth/search-service/pkg/docstore"
	"github.com/neviswealth/search-service/pkg/docstore/inmemory"
)

func TestInMemoryStore(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "InMemory Store Suite")
}

var _ = Describe("Store", func() {
	var (
		store *inmemory.Store
		ctx   context.Context
	)

	BeforeEach(func() {
		store = inmemory.NewStore()
		ctx = context.Background()
	})

	newClient := func(email, first, last string) docstore.Client {
		return docstore.Client{
			Email:           email,
			EmailDomain:     "acme.com",
			EmailDomainSlug: "acme",
			FirstName:       first,
			LastName:        last,
			FullName:        first + " " + last,
		}
	}

	Describe("clients", func() {
		It("assigns id and created_at on insert", func() {
			saved, err := store.InsertClient(ctx, newClient("john@acme.com", "john", "smith"))
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.ID).NotTo(Equal(uuid.Nil))
			Expect(saved.CreatedAt).NotTo(BeZero())
		})

		It("rejects a duplicate email with a conflict", func() {
			_, err := store.InsertClient(ctx, newClient("john@acme.com", "john", "smith"))
			Expect(err).NotTo(HaveOccurred())

			_, err = store.InsertClient(ctx, newClient("john@acme.com", "johnny", "smythe"))
			var conflict *docstore.ConflictError
			Expect(err).To(BeAssignableToTypeOf(conflict))
		})

		It("finds by id and reports existence", func() {
			saved, err := store.InsertClient(ctx, newClient("a@acme.com", "a", "b"))
			Expect(err).NotTo(HaveOccurred())

			found, err := store.FindClientByID(ctx, saved.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Email).To(Equal("a@acme.com"))

			exists, err := store.ClientExists(ctx, saved.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = store.ClientExists(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("returns not found for an unknown id", func() {
			_, err := store.FindClientByID(ctx, uuid.New())
			var notFound *docstore.NotFoundError
			Expect(err).To(BeAssignableToTypeOf(notFound))
		})

		It("scores email substring matches 1.0", func() {
			_, err := store.InsertClient(ctx, newClient("john@acme.com", "john", "smith"))
			Expect(err).NotTo(HaveOccurred())

			hits, err := store.SearchClientsByEmail(ctx, "@acme.com", 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(HaveLen(1))
			Expect(hits[0].Score).To(Equal(1.0))
		})

		It("matches names by substring and domain by slug", func() {
			_, err := store.InsertClient(ctx, newClient("john@acme.com", "john", "smith"))
			Expect(err).NotTo(HaveOccurred())

			hits, err := store.SearchClientsByNameOrDomain(ctx, "john smith", "johnsmith", 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(HaveLen(1))
			Expect(hits[0].Score).To(Equal(1.0))

			hits, err = store.SearchClientsByNameOrDomain(ctx, "acme", "acme", 20)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(HaveLen(1))
		})

		It("caps client hits at the limit", func() {
			for _, email := range []string{"a@acme.com", "b@acme.com", "c@acme.com"} {
				_, err := store.InsertClient(ctx, newClient(email, "x", "y"))
				Expect(err).NotTo(HaveOccurred())
			}

			hits, err := store.SearchClientsByEmail(ctx, "acme.com", 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(HaveLen(2))
		})
	})

	Describe("documents and chunks", func() {
		var clientID uuid.UUID

		ingest := func(title, chunkText string, embedding []float32) docstore.Document {
			doc := docstore.Document{
				ID:       uuid.New(),
				ClientID: clientID,
				Title:    title,
				Content:  chunkText,
			}
			saved, err := store.IngestDocument(ctx, doc, []docstore.DocumentChunk{
				{ChunkIndex: 0, Content: chunkText, Embedding: embedding},
			})
			Expect(err).NotTo(HaveOccurred())
			return saved
		}

		BeforeEach(func() {
			saved, err := store.InsertClient(ctx, newClient("owner@acme.com", "owner", "one"))
			Expect(err).NotTo(HaveOccurred())
			clientID = saved.ID
		})

		It("stores document and chunks together", func() {
			saved := ingest("Utility bill", "electricity invoice for march", []float32{1, 0})

			found, err := store.FindDocumentByID(ctx, saved.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Title).To(Equal("Utility bill"))
			Expect(found.CreatedAt).NotTo(BeZero())

			exists, err := store.DocumentTitleExists(ctx, clientID, "Utility bill")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("rejects a duplicate (client, title) pair with a conflict", func() {
			ingest("Utility bill", "electricity invoice for march", []float32{1, 0})

			_, err := store.IngestDocument(ctx, docstore.Document{
				ID:       uuid.New(),
				ClientID: clientID,
				Title:    "Utility bill",
				Content:  "a second copy",
			}, nil)
			var conflict *docstore.ConflictError
			Expect(err).To(BeAssignableToTypeOf(conflict))

			docs, err := store.ListDocuments(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
		})

		It("allows the same title for a different client", func() {
			ingest("Utility bill", "electricity invoice for march", []float32{1, 0})

			other, err := store.InsertClient(ctx, newClient("other@acme.com", "other", "two"))
			Expect(err).NotTo(HaveOccurred())

			_, err = store.IngestDocument(ctx, docstore.Document{
				ID:       uuid.New(),
				ClientID: other.ID,
				Title:    "Utility bill",
				Content:  "their copy",
			}, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("finds lexical hits with substring score 1.0 and one hit per document", func() {
			saved := ingest("Utility bill", "electricity invoice for march", []float32{1, 0})

			hits, err := store.SearchLexical(ctx, nil, "electricity", 10, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(HaveLen(1))
			Expect(hits[0].Document.ID).To(Equal(saved.ID))
			Expect(hits[0].Score).To(Equal(1.0))
			Expect(hits[0].Snippet).To(Equal("electricity invoice for march"))
		})

		It("filters weak lexical similarity by threshold", func() {
			ingest("Utility bill", "electricity invoice for march", []float32{1, 0})

			hits, err := store.SearchLexical(ctx, nil, "zzzzqqqq", 10, 0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(BeEmpty())
		})

		It("restricts lexical search to the given client", func() {
			ingest("Utility bill", "electricity invoice", []float32{1, 0})
			other := uuid.New()

			hits, err := store.SearchLexical(ctx, &other, "electricity", 10, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(BeEmpty())
		})

		It("scores vector hits by exp of negative distance", func() {
			saved := ingest("Utility bill", "electricity invoice", []float32{1, 0})

			hits, err := store.SearchVector(ctx, nil, []float32{1, 0}, 10, 0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(HaveLen(1))
			Expect(hits[0].Document.ID).To(Equal(saved.ID))
			Expect(hits[0].Score).To(BeNumerically("~", 1.0, 1e-9))
		})

		It("drops vector hits below the score threshold", func() {
			ingest("Utility bill", "electricity invoice", []float32{10, 0})

			hits, err := store.SearchVector(ctx, nil, []float32{-10, 0}, 10, 0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(BeEmpty())
		})

		It("keeps only the best chunk of a document in the vector pass", func() {
			doc := docstore.Document{ID: uuid.New(), ClientID: clientID, Title: "Doc", Content: "x"}
			_, err := store.IngestDocument(ctx, doc, []docstore.DocumentChunk{
				{ChunkIndex: 0, Content: "far chunk", Embedding: []float32{5, 0}},
				{ChunkIndex: 1, Content: "near chunk", Embedding: []float32{1, 0}},
			})
			Expect(err).NotTo(HaveOccurred())

			hits, err := store.SearchVector(ctx, nil, []float32{1, 0}, 10, 0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(hits).To(HaveLen(1))
			Expect(hits[0].Snippet).To(Equal("near chunk"))
		})

		It("updates the summary", func() {
			saved := ingest("Utility bill", "electricity invoice", []float32{1, 0})

			Expect(store.UpdateDocumentSummary(ctx, saved.ID, "a summary")).To(Succeed())
			found, err := store.FindDocumentByID(ctx, saved.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Summary).NotTo(BeNil())
			Expect(*found.Summary).To(Equal("a summary"))
		})

		It("keeps the first summary when updated again", func() {
			saved := ingest("Utility bill", "electricity invoice", []float32{1, 0})

			Expect(store.UpdateDocumentSummary(ctx, saved.ID, "first")).To(Succeed())
			Expect(store.UpdateDocumentSummary(ctx, saved.ID, "second")).To(Succeed())

			found, err := store.FindDocumentByID(ctx, saved.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*found.Summary).To(Equal("first"))
		})

		It("lists documents without content", func() {
			ingest("Utility bill", "electricity invoice", []float32{1, 0})

			docs, err := store.ListDocuments(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(docs).To(HaveLen(1))
			Expect(docs[0].Content).To(BeEmpty())
		})
	})
})
