package employee

import (
	"math/rand/v2"
	"time"

	"github.com/Sumatoshi-tech/staffgen/internal/corpus"
)

// birthdateFormat renders instants as ISO-8601 with millisecond
// precision in UTC, e.g. "1991-04-23T08:15:30.123Z".
const birthdateFormat = "2006-01-02T15:04:05.000Z"

// maxBirthdateRetries bounds the resampling loop before the generator
// falls back to deterministic perturbation. Uniform resampling over a
// healthy window almost never needs more than a couple of draws; only a
// degenerate (zero-width) window exhausts the budget.
const maxBirthdateRetries = 64

// Source produces uniform random values in [0, 1).
type Source func() float64

// Generator synthesizes employee records. The zero value is not usable;
// construct with New, NewSeeded or NewWithSource.
type Generator struct {
	rnd Source
	now func() time.Time
}

// New returns a Generator backed by the package-global random source
// and the real clock.
func New() *Generator {
	return &Generator{rnd: rand.Float64, now: time.Now}
}

// NewSeeded returns a Generator with a private source seeded for
// reproducible runs.
func NewSeeded(seed uint64) *Generator {
	r := rand.New(rand.NewPCG(seed, seed))

	return &Generator{rnd: r.Float64, now: time.Now}
}

// NewWithSource returns a Generator with an injected random source and
// clock. Tests use this to pin both.
func NewWithSource(rnd Source, now func() time.Time) *Generator {
	return &Generator{rnd: rnd, now: now}
}

// Generate produces exactly cfg.Count employees. Records are
// independent draws; the only cross-record state is the uniqueness set
// over formatted birthdates, which lives and dies with this call.
func (g *Generator) Generate(cfg Config) ([]Employee, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	now := g.now().UTC()
	// Age window: min years ago is the youngest allowed birthdate, max
	// years ago the oldest.
	maxDate := now.AddDate(-cfg.Age.Min, 0, 0)
	minDate := now.AddDate(-cfg.Age.Max, 0, 0)
	span := maxDate.Sub(minDate)

	used := make(map[string]struct{}, cfg.Count)
	employees := make([]Employee, 0, cfg.Count)

	for range cfg.Count {
		gender := g.pickGender()

		employees = append(employees, Employee{
			Gender:    gender,
			Birthdate: g.uniqueBirthdate(minDate, span, used),
			Name:      g.pick(namesFor(gender)),
			Surname:   g.pick(corpus.Surnames),
			Workload:  Workloads[g.intn(len(Workloads))],
		})
	}

	return employees, nil
}

func namesFor(gender Gender) []string {
	if gender == Male {
		return corpus.MaleNames
	}

	return corpus.FemaleNames
}

func (g *Generator) pickGender() Gender {
	if g.rnd() < 0.5 {
		return Male
	}

	return Female
}

func (g *Generator) pick(values []string) string {
	return values[g.intn(len(values))]
}

// intn maps a uniform [0,1) draw onto {0, ..., n-1}.
func (g *Generator) intn(n int) int {
	return int(g.rnd() * float64(n))
}

// uniqueBirthdate samples an instant in [minDate, minDate+span) until
// its formatted form is unused, then records and returns it. After
// maxBirthdateRetries collisions it switches to stepping the candidate
// back one millisecond at a time; each step yields a distinct formatted
// string, so the walk finds a free one within len(used)+1 steps. That
// keeps generation terminating even for a zero-width window, where
// every random draw collapses to the same instant.
func (g *Generator) uniqueBirthdate(minDate time.Time, span time.Duration, used map[string]struct{}) string {
	candidate := g.instantIn(minDate, span)

	for range maxBirthdateRetries {
		formatted := candidate.Format(birthdateFormat)
		if _, taken := used[formatted]; !taken {
			used[formatted] = struct{}{}

			return formatted
		}

		candidate = g.instantIn(minDate, span)
	}

	for {
		candidate = candidate.Add(-time.Millisecond)

		formatted := candidate.Format(birthdateFormat)
		if _, taken := used[formatted]; !taken {
			used[formatted] = struct{}{}

			return formatted
		}
	}
}

func (g *Generator) instantIn(minDate time.Time, span time.Duration) time.Time {
	if span <= 0 {
		return minDate
	}

	return minDate.Add(time.Duration(g.rnd() * float64(span)))
}
