package dissolve_test

import (
	"math/rand/v2"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/benstone/3dmm-dissolve/internal/dissolve"
)

var _ = Describe("Transition", func() {
	var (
		coords map[[2]int]int
		swap   dissolve.Swapper
	)

	BeforeEach(func() {
		coords = make(map[[2]int]int)
		swap = dissolve.SwapperFunc(func(x, y int) {
			coords[[2]int{x, y}]++
		})
	})

	newTransition := func(d time.Duration, w, h int, seed uint64) *dissolve.Transition {
		tr, err := dissolve.New(d, w, h, swap, rand.New(rand.NewPCG(seed, seed)))
		Expect(err).NotTo(HaveOccurred())
		return tr
	}

	DescribeTable("covers every pixel exactly once",
		func(w, h int) {
			tr := newTransition(time.Second, w, h, 11)
			for running := true; running; {
				var err error
				running, err = tr.Update(17 * time.Millisecond)
				Expect(err).NotTo(HaveOccurred())
			}

			Expect(coords).To(HaveLen(w * h))
			for coord, n := range coords {
				Expect(n).To(Equal(1), "coordinate %v swapped more than once", coord)
				Expect(coord[0]).To(SatisfyAll(BeNumerically(">=", 0), BeNumerically("<", w)))
				Expect(coord[1]).To(SatisfyAll(BeNumerically(">=", 0), BeNumerically("<", h)))
			}
		},
		Entry("1x1", 1, 1),
		Entry("3x5", 3, 5),
		Entry("64x64", 64, 64),
		Entry("256x256 (exactly one generator cycle)", 256, 256),
		Entry("400x200 (more pixels than cycle length)", 400, 200),
	)

	It("never decreases the swap count", func() {
		tr := newTransition(2*time.Second, 50, 50, 3)
		rng := rand.New(rand.NewPCG(42, 42))

		prev := 0
		for i := 0; i < 300; i++ {
			_, err := tr.Update(time.Duration(rng.IntN(20)) * time.Millisecond)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Swapped()).To(BeNumerically(">=", prev))
			prev = tr.Swapped()
		}
	})

	It("keeps the swap count on the floor staircase", func() {
		tr := newTransition(time.Second, 100, 100, 5)
		for i := 0; i < 40; i++ {
			_, err := tr.Update(33 * time.Millisecond)
			Expect(err).NotTo(HaveOccurred())

			elapsed := tr.Elapsed()
			want := int(int64(tr.Total()) * int64(elapsed) / int64(time.Second))
			Expect(tr.Swapped()).To(Equal(want))
		}
	})

	It("stays finished once it finishes", func() {
		tr := newTransition(10*time.Millisecond, 8, 8, 9)
		running, err := tr.Update(time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(running).To(BeFalse())

		swapsAtCompletion := len(coords)
		for i := 0; i < 5; i++ {
			running, err = tr.Update(time.Second)
			Expect(err).NotTo(HaveOccurred())
			Expect(running).To(BeFalse())
		}
		Expect(coords).To(HaveLen(swapsAtCompletion))
	})

	It("covers every pixel again after a reset", func() {
		tr := newTransition(50*time.Millisecond, 24, 16, 13)
		_, err := tr.Update(time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(coords).To(HaveLen(24 * 16))

		coords = map[[2]int]int{}
		tr.Reset()
		Expect(tr.Running()).To(BeTrue())

		running, err := tr.Update(time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(running).To(BeFalse())
		Expect(coords).To(HaveLen(24 * 16))
	})
})
