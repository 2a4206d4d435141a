package eventstream_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/neviswealth/search-service/pkg/eventstream"
	"github.com/neviswealth/search-service/pkg/eventstream/nop"
)

func TestEventstream(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Eventstream Suite")
}

var _ = Describe("DocumentIngestedEvent", func() {
	It("stamps version, type, id and timestamp", func() {
		clientID := uuid.New()
		documentID := uuid.New()
		event := eventstream.NewDocumentIngestedEvent(clientID, documentID, "KYC Review", "abc123", 4)

		Expect(event.SchemaVersion).To(Equal(eventstream.SchemaVersionV1))
		Expect(event.EventType).To(Equal(eventstream.EventTypeDocumentIngested))
		Expect(event.EventID).NotTo(Equal(uuid.Nil))
		Expect(event.EmittedAt).NotTo(BeZero())
		Expect(event.ChunkCount).To(Equal(4))
	})

	It("marshals with snake_case field names", func() {
		event := eventstream.NewDocumentIngestedEvent(uuid.New(), uuid.New(), "Title", "hash", 1)
		payload, err := json.Marshal(event)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(payload, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKey("schema_version"))
		Expect(decoded).To(HaveKey("event_type"))
		Expect(decoded).To(HaveKey("content_hash"))
		Expect(decoded).To(HaveKey("chunk_count"))
		Expect(decoded["event_type"]).To(Equal("search.document.ingested"))
	})
})

var _ = Describe("nop publisher", func() {
	It("accepts events without error", func() {
		publisher := nop.NewPublisher()
		event := eventstream.NewDocumentIngestedEvent(uuid.New(), uuid.New(), "Title", "hash", 1)
		Expect(publisher.PublishDocumentIngested(context.Background(), event)).To(Succeed())
		Expect(publisher.Close()).To(Succeed())
	})

	It("rejects a nil event", func() {
		publisher := nop.NewPublisher()
		err := publisher.PublishDocumentIngested(context.Background(), nil)
		Expect(err).To(MatchError(eventstream.ErrNilEvent))
	})
})
