package singleflight_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/neviswealth/search-service/pkg/singleflight"
)

func TestSingleFlight(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SingleFlight Suite")
}

var _ = Describe("Loader", func() {
	It("returns the computed value", func() {
		loader := singleflight.NewLoader[string, int]()
		got, err := loader.Load("k", func() (int, error) { return 42, nil })
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(42))
	})

	It("runs compute exactly once for 50 concurrent callers of one key", func() {
		loader := singleflight.NewLoader[string, int64]()
		var counter atomic.Int64

		var wg sync.WaitGroup
		results := make([]int64, 50)
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				got, err := loader.Load("k", func() (int64, error) {
					time.Sleep(50 * time.Millisecond)
					return counter.Add(1), nil
				})
				Expect(err).NotTo(HaveOccurred())
				results[i] = got
			}()
		}
		wg.Wait()

		Expect(counter.Load()).To(Equal(int64(1)))
		for _, got := range results {
			Expect(got).To(Equal(int64(1)))
		}
	})

	It("shares the same error with all concurrent callers", func() {
		loader := singleflight.NewLoader[string, string]()
		boom := errors.New("boom")

		var wg sync.WaitGroup
		errs := make([]error, 10)
		for i := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer GinkgoRecover()
				_, err := loader.Load("k", func() (string, error) {
					time.Sleep(20 * time.Millisecond)
					return "", boom
				})
				errs[i] = err
			}()
		}
		wg.Wait()

		for _, err := range errs {
			Expect(err).To(MatchError(boom))
		}
	})

	It("computes independently per key", func() {
		loader := singleflight.NewLoader[string, string]()
		a, err := loader.Load("a", func() (string, error) { return "va", nil })
		Expect(err).NotTo(HaveOccurred())
		b, err := loader.Load("b", func() (string, error) { return "vb", nil })
		Expect(err).NotTo(HaveOccurred())

		Expect(a).To(Equal("va"))
		Expect(b).To(Equal("vb"))
	})

	It("starts a fresh computation once the previous one finished", func() {
		loader := singleflight.NewLoader[string, int]()
		calls := 0
		compute := func() (int, error) { calls++; return calls, nil }

		first, err := loader.Load("k", compute)
		Expect(err).NotTo(HaveOccurred())
		second, err := loader.Load("k", compute)
		Expect(err).NotTo(HaveOccurred())

		Expect(first).To(Equal(1))
		Expect(second).To(Equal(2))
	})
})
