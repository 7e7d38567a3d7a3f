package route

import "testing"

// Option indexes in sorted order.
const (
	optHelp uint16 = iota
	optKeyOnly
	optMulti1
	optMulti2
	optSingle1
)

// Segment indexes in flattening order.
const (
	segRoot uint16 = iota
	segA
	segA1
	segA2
	segB
	segB1
	segB2
	segC
)

func testOptions(t testing.TB) *OptionTable {
	t.Helper()
	table, err := NewOptions(
		Option("single1").Short('s').Takes(Single).Summary("A single value"),
		Option("multi1").Short('m').Takes(Multiple).Summary("Any number of values"),
		Option("multi2").Takes(Multiple),
		Option("key-only").Short('k').Summary("A switch"),
		Option("help").Short('h').Help().Summary("Shows usage"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func testTree(root string) *Seg {
	return New(root).Nest(
		New("a").Summary("Does a things").Nest(
			New("a1").Options(AnyOf("multi1", "single1").Required()),
			New("a2").Operands(2),
		),
		New("b").Nest(
			New("b1"),
			New("b2").Options(AnyOf("key-only").Required()),
		),
		New("c").Operands(Unbounded),
	)
}

func testRouter(t testing.TB) *Router {
	t.Helper()
	r, err := Build(testTree("prog"), testOptions(t))
	if err != nil {
		t.Fatal(err)
	}
	return r
}
