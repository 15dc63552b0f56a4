package cart

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagimos/discord-bot1/pkg/market"
)

func testItem(name string, price int64) market.Item {
	return market.Item{Name: name, Price: decimal.NewFromInt(price), Description: "test item"}
}

func TestStoreGetOrCreate(t *testing.T) {
	s := NewStore()

	assert.Empty(t, s.Get("nobody"))
	assert.True(t, s.IsEmpty("nobody"))

	s.Append("u1", testItem("Combat Pistol", 54500))
	assert.False(t, s.IsEmpty("u1"))
	assert.True(t, s.IsEmpty("u2"))
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append("u1", testItem("Shotgun", 120000))

	lines := s.Get("u1")
	lines[0] = testItem("Tampered", 1)

	assert.Equal(t, "Shotgun", s.Get("u1")[0].Name)
}

func TestAppendManyClamp(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"zero behaves as one", 0, 1},
		{"negative behaves as one", -5, 1},
		{"in range kept", 7, 7},
		{"min kept", 1, 1},
		{"max kept", 99, 99},
		{"above max clamped", 150, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.AppendMany("u1", testItem("Ammo Pistol", 1500), tt.quantity)
			assert.Len(t, s.Get("u1"), tt.want)
		})
	}
}

func TestAppendQuantityText(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		wantQuantity  int
		wantDefaulted bool
	}{
		{"plain number", "3", 3, false},
		{"padded number", "  12 ", 12, false},
		{"non-numeric defaults", "abc", 1, true},
		{"empty defaults", "", 1, true},
		{"zero clamps without default notice", "0", 1, false},
		{"overflow clamps without default notice", "150", 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			qty, defaulted := s.AppendQuantityText("u1", testItem("Burner Phone", 5000), tt.text)
			assert.Equal(t, tt.wantQuantity, qty)
			assert.Equal(t, tt.wantDefaulted, defaulted)
			assert.Len(t, s.Get("u1"), tt.wantQuantity)
		})
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AppendMany("u1", testItem("Lockpick Set", 8000), 4)
	s.Append("u2", testItem("Lockpick Set", 8000))

	s.Clear("u1")

	assert.True(t, s.IsEmpty("u1"))
	assert.False(t, s.IsEmpty("u2"), "clearing one user must not touch another")

	sum := Summarize(s.Get("u1"))
	assert.Empty(t, sum.Groups)
	assert.True(t, sum.Total.IsZero())
}

func TestConcurrentAppendsSameUser(t *testing.T) {
	s := NewStore()
	item := testItem("Armor Plate", 15000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AppendMany("u1", item, 2)
		}()
	}
	wg.Wait()

	require.Len(t, s.Get("u1"), 100)
	wantTotal := item.Price.Mul(decimal.NewFromInt(100))
	assert.True(t, Summarize(s.Get("u1")).Total.Equal(wantTotal))
}
