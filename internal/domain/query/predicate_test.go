package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	clause, args := Eq("shipments.status", "pending").Clause()
	assert.Equal(t, "shipments.status = ?", clause)
	assert.Equal(t, []any{"pending"}, args)
}

func TestIn_RendersOnePlaceholderPerValue(t *testing.T) {
	clause, args := In("status", []string{"pending", "in_progress", "delivered"}).Clause()
	assert.Equal(t, "status IN (?,?,?)", clause)
	assert.Equal(t, []any{"pending", "in_progress", "delivered"}, args)
}

func TestBounds(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	clause, args := Gte("created_at", start).Clause()
	assert.Equal(t, "created_at >= ?", clause)
	assert.Equal(t, []any{start}, args)

	clause, args = Lte("total", 5000.0).Clause()
	assert.Equal(t, "total <= ?", clause)
	assert.Equal(t, []any{5000.0}, args)

	clause, args = Between("amount", 10, 20).Clause()
	assert.Equal(t, "amount BETWEEN ? AND ?", clause)
	assert.Equal(t, []any{10, 20}, args)
}

func TestExists(t *testing.T) {
	clause, args := Exists("SELECT 1 FROM store_orders so WHERE so.id = shipments.store_order_id AND so.store_id = ?", "abc").Clause()
	assert.Equal(t, "EXISTS (SELECT 1 FROM store_orders so WHERE so.id = shipments.store_order_id AND so.store_id = ?)", clause)
	assert.Equal(t, []any{"abc"}, args)

	clause, _ = NotExists("SELECT 1 FROM support_tickets t WHERE t.description LIKE ?", "%x%").Clause()
	assert.Equal(t, "NOT EXISTS (SELECT 1 FROM support_tickets t WHERE t.description LIKE ?)", clause)
}

func TestMatchAll(t *testing.T) {
	clause, args := MatchAll().Clause()
	assert.Equal(t, "1=1", clause)
	assert.Empty(t, args)
}

func TestAnd_CombinesAndFlattensArgs(t *testing.T) {
	pred := And(
		Eq("store_id", "s1"),
		In("status", []string{"pending", "delivered"}),
		Gte("created_at", "2025-01-01"),
	)

	clause, args := pred.Clause()
	assert.Equal(t, "(store_id = ?) AND (status IN (?,?)) AND (created_at >= ?)", clause)
	assert.Equal(t, []any{"s1", "pending", "delivered", "2025-01-01"}, args)
}

func TestAnd_SkipsNilPredicates(t *testing.T) {
	pred := And(nil, Eq("driver_id", "d1"), nil)

	clause, args := pred.Clause()
	assert.Equal(t, "(driver_id = ?)", clause)
	assert.Equal(t, []any{"d1"}, args)
}

func TestAnd_EmptyMatchesEverything(t *testing.T) {
	clause, args := And().Clause()
	assert.Equal(t, "1=1", clause)
	assert.Empty(t, args)
}

func TestAnd_Nested(t *testing.T) {
	inner := And(Eq("a", 1), Eq("b", 2))
	outer := And(inner, Eq("c", 3))

	clause, args := outer.Clause()
	assert.Equal(t, "((a = ?) AND (b = ?)) AND (c = ?)", clause)
	assert.Equal(t, []any{1, 2, 3}, args)
}
