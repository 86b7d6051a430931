package deal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	base := Candidate{Title: "TV", DisplayPrice: "KSh 100", ProductURL: "https://x/tv"}

	t.Run("같은 (URL, 가격, 제목)이면 같은 값", func(t *testing.T) {
		other := base
		other.ImageURL = "https://x/tv.jpg"
		other.DiscountLabel = "-10%"
		other.Source = "deals"

		assert.Equal(t, Fingerprint(base), Fingerprint(other))
		assert.Len(t, Fingerprint(base), 64)
	})

	changes := []struct {
		name   string
		modify func(c *Candidate)
	}{
		{"URL이 바뀌면 다른 값", func(c *Candidate) { c.ProductURL = "https://x/tv2" }},
		{"가격이 바뀌면 다른 값", func(c *Candidate) { c.DisplayPrice = "KSh 90" }},
		{"제목이 바뀌면 다른 값", func(c *Candidate) { c.Title = "TV 55inch" }},
		{"가격이 비어도 다른 값", func(c *Candidate) { c.DisplayPrice = "" }},
	}
	for _, tt := range changes {
		t.Run(tt.name, func(t *testing.T) {
			other := base
			tt.modify(&other)

			assert.NotEqual(t, Fingerprint(base), Fingerprint(other))
		})
	}

	t.Run("알려진 값", func(t *testing.T) {
		assert.Equal(t, "f814c3c1fca9272e0d87e62cd009e9cc47c011eba860a4af61dc8d5062981866", Fingerprint(base))
	})
}
