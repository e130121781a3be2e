package btcbasis

import (
	"errors"
	"testing"
	"time"

	"github.com/etnz/btcbasis/date"
)

func TestLot_SplitProportionality(t *testing.T) {
	parent := &Lot{Date: date.New(2021, time.January, 1), BTC: Q(10), Cost: USD(1000)}

	taken, rest := parent.split(Q(3))
	if !taken.BTC.Equal(Q(3)) || !rest.BTC.Equal(Q(7)) {
		t.Errorf("split quantities = %s + %s, want 3 + 7", taken.BTC, rest.BTC)
	}
	if !taken.BTC.Add(rest.BTC).Equal(parent.BTC) {
		t.Errorf("split quantities do not sum back to %s", parent.BTC)
	}
	if !taken.Cost.Equal(USD(300)) {
		t.Errorf("taken cost = %s, want $300.00", taken.Cost)
	}
	if !rest.Cost.Equal(USD(700)) {
		t.Errorf("rest cost = %s, want $700.00", rest.Cost)
	}
	// the remainder takes the exact residue, conserving the parent cost.
	if !taken.Cost.Add(rest.Cost).Equal(parent.Cost) {
		t.Errorf("split costs sum to %s, want %s", taken.Cost.Add(rest.Cost), parent.Cost)
	}
	if taken.Date != parent.Date || rest.Date != parent.Date {
		t.Errorf("split children must keep the acquisition date")
	}
}

func TestLot_SplitConservesCostOnInexactDivision(t *testing.T) {
	// 100/3 has no finite decimal expansion: the proportional share is
	// rounded, the remainder must absorb the residue.
	parent := &Lot{Date: date.New(2021, time.January, 1), BTC: Q(3), Cost: USD(100)}
	taken, rest := parent.split(Q(1))
	if !taken.Cost.Add(rest.Cost).Equal(parent.Cost) {
		t.Errorf("split costs sum to %s, want exactly %s", taken.Cost.Add(rest.Cost), parent.Cost)
	}
}

func TestLot_SellAndGain(t *testing.T) {
	l := &Lot{Date: date.New(2021, time.January, 1), BTC: Q(0.5), Cost: USD(50)}
	l.sell(date.New(2021, time.January, 2), USD(120))

	if !l.Sold {
		t.Fatal("lot not marked sold")
	}
	if !l.SaleProceeds.Equal(USD(60)) {
		t.Errorf("SaleProceeds = %s, want $60.00", l.SaleProceeds)
	}
	if !l.SalePrice().Equal(USD(120)) {
		t.Errorf("SalePrice() = %s, want $120.00", l.SalePrice())
	}
	if !l.Gain().Equal(USD(10)) {
		t.Errorf("Gain() = %s, want $10.00", l.Gain())
	}
}

func TestInventory_FIFOOrdering(t *testing.T) {
	day1 := date.New(2021, time.January, 1)
	day2 := date.New(2021, time.January, 2)
	day3 := date.New(2021, time.January, 3)

	inv := NewInventory()
	inv.Buy(day1, Q(2), USD(200))
	inv.Buy(day2, Q(3), USD(600))

	if err := inv.Sell(day3, Q(2.5), USD(150)); err != nil {
		t.Fatalf("Sell() error = %v", err)
	}

	sold := inv.Sold()
	if len(sold) != 2 {
		t.Fatalf("Sold() returned %d lots, want 2", len(sold))
	}
	// all of the day-1 lot goes first.
	if sold[0].Date != day1 || !sold[0].BTC.Equal(Q(2)) {
		t.Errorf("first sold lot = %s %s BTC, want day1 2 BTC", sold[0].Date, sold[0].BTC)
	}
	// then half a BTC split off the day-2 lot.
	if sold[1].Date != day2 || !sold[1].BTC.Equal(Q(0.5)) {
		t.Errorf("second sold lot = %s %s BTC, want day2 0.5 BTC", sold[1].Date, sold[1].BTC)
	}
	if !sold[1].Cost.Equal(USD(100)) {
		t.Errorf("second sold lot cost = %s, want $100.00", sold[1].Cost)
	}

	open := inv.Open()
	if len(open) != 1 {
		t.Fatalf("Open() returned %d lots, want 1", len(open))
	}
	// the remainder stays dated day2 at the front of the queue.
	if open[0].Date != day2 || !open[0].BTC.Equal(Q(2.5)) {
		t.Errorf("open lot = %s %s BTC, want day2 2.5 BTC", open[0].Date, open[0].BTC)
	}
	if !open[0].Cost.Equal(USD(500)) {
		t.Errorf("open lot cost = %s, want $500.00", open[0].Cost)
	}
}

func TestInventory_SplitRemainderSoldFirst(t *testing.T) {
	on := date.New(2021, time.January, 1)
	inv := NewInventory()
	inv.Buy(on, Q(2), USD(200))
	inv.Buy(on.Add(1), Q(1), USD(300))

	// consume half of the first lot; the remainder goes back to the front.
	if err := inv.Sell(on.Add(2), Q(1), USD(150)); err != nil {
		t.Fatal(err)
	}
	// the next sale must hit that remainder before the younger lot.
	if err := inv.Sell(on.Add(3), Q(1), USD(160)); err != nil {
		t.Fatal(err)
	}

	sold := inv.Sold()
	if len(sold) != 2 {
		t.Fatalf("Sold() returned %d lots, want 2", len(sold))
	}
	if sold[1].Date != on {
		t.Errorf("second sale consumed a lot dated %s, want the %s remainder", sold[1].Date, on)
	}
	if got := inv.Held(); !got.Equal(Q(1)) {
		t.Errorf("Held() = %s, want 1", got)
	}
}

func TestInventory_Underflow(t *testing.T) {
	on := date.New(2021, time.January, 1)
	inv := NewInventory()
	inv.Buy(on, Q(3), USD(300))

	err := inv.Sell(on.Add(1), Q(5), USD(100))
	var under *InsufficientInventoryError
	if !errors.As(err, &under) {
		t.Fatalf("Sell() error = %v, want *InsufficientInventoryError", err)
	}
	if !under.Wanted.Equal(Q(2)) {
		t.Errorf("Wanted = %s, want the unmatched 2 BTC", under.Wanted)
	}
}

func TestInventory_Conservation(t *testing.T) {
	on := date.New(2021, time.January, 1)
	inv := NewInventory()

	var bought Quantity
	for i, q := range []float64{1.33, 0.07, 2.5, 0.6} {
		inv.Buy(on.Add(i), Q(q), USD(q*100))
		bought = bought.Add(Q(q))
	}
	if err := inv.Sell(on.Add(10), Q(1.9), USD(110)); err != nil {
		t.Fatal(err)
	}
	if err := inv.Sell(on.Add(11), Q(0.13), USD(120)); err != nil {
		t.Fatal(err)
	}

	var total Quantity
	for _, l := range inv.Sold() {
		total = total.Add(l.BTC)
	}
	total = total.Add(inv.Held())
	if !total.Equal(bought) {
		t.Errorf("sold + open = %s, want exactly the %s bought", total, bought)
	}
}

func TestCombine(t *testing.T) {
	lots := []*Lot{
		{Date: date.New(2021, time.January, 1), BTC: Q(1), Cost: USD(100)},
		{Date: date.New(2021, time.February, 1), BTC: Q(2), Cost: USD(150)},
	}
	c := Combine(lots)
	if !c.BTC.Equal(Q(3)) || !c.Cost.Equal(USD(250)) {
		t.Errorf("Combine() = %s BTC at %s, want 3 BTC at $250.00", c.BTC, c.Cost)
	}
	// the combined lot takes the last constituent's date.
	if c.Date != date.New(2021, time.February, 1) {
		t.Errorf("Combine() date = %s, want 2021-02-01", c.Date)
	}
	if Combine(nil) != nil {
		t.Error("Combine(nil) should be nil")
	}
}
