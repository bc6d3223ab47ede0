package piece

import (
	"math/rand/v2"
	"slices"
)

// Bag deals kinds in shuffled cycles of all seven, so no kind is ever more
// than twelve pieces away.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag returns an empty bag drawing from rng. A nil rng uses a randomly
// seeded source.
func NewBag(rng *rand.Rand) *Bag {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Bag{rng: rng}
}

// Next removes and returns the next kind, refilling the bag when empty.
func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// Peek returns the next n kinds without dealing them. Later cycles are
// shuffled ahead of time when n reaches past the current one.
func (b *Bag) Peek(n int) []Kind {
	for len(b.queue) < n {
		b.refill()
	}
	return slices.Clone(b.queue[:n])
}

// Len returns how many kinds are queued.
func (b *Bag) Len() int {
	return len(b.queue)
}

func (b *Bag) refill() {
	cycle := Kinds
	b.rng.Shuffle(len(cycle), func(i, j int) {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	})
	b.queue = append(b.queue, cycle[:]...)
}
