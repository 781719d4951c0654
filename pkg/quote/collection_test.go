package quote

import "testing"

func TestNewCollectionSeedsMinimum(t *testing.T) {
	if got := NewCollection(1).Len(); got != 1 {
		t.Errorf("NewCollection(1).Len() = %d, expected 1", got)
	}
	if got := NewCollection(3).Len(); got != 3 {
		t.Errorf("NewCollection(3).Len() = %d, expected 3", got)
	}
	if got := NewCollection(0).Len(); got != 1 {
		t.Errorf("NewCollection(0).Len() = %d, expected floor of 1", got)
	}
}

func TestRemoveRespectsFloor(t *testing.T) {
	c := NewCollection(1)
	c.Add()
	c.Remove(0)
	if c.Len() != 1 {
		t.Fatalf("Len = %d after removing down to the floor, expected 1", c.Len())
	}

	// Repeated removal at the floor is idempotent.
	before := c.Items()
	c.Remove(0)
	c.Remove(0)
	after := c.Items()
	if len(after) != 1 || after[0] != before[0] {
		t.Errorf("removal at the floor changed the collection: %+v -> %+v", before, after)
	}
}

func TestRemoveOutOfBoundsIsNoOp(t *testing.T) {
	c := NewCollection(1)
	c.Add()
	c.Remove(-1)
	c.Remove(5)
	if c.Len() != 2 {
		t.Errorf("Len = %d after out-of-bounds removals, expected 2", c.Len())
	}
}

func TestDuplicateAppendsAtEnd(t *testing.T) {
	c := NewCollection(1)
	c.Update(0, FieldBrandName, "Calcirol")
	c.Add()
	c.Update(1, FieldBrandName, "Zycal")

	c.Duplicate(0)
	items := c.Items()
	if len(items) != 3 {
		t.Fatalf("Len = %d after duplicate, expected 3", len(items))
	}

	dup := items[2]
	src := items[0]
	if dup.BrandName != src.BrandName {
		t.Errorf("duplicate brand = %q, expected %q", dup.BrandName, src.BrandName)
	}
	if dup.ID == src.ID {
		t.Error("duplicate shares identity with source")
	}

	// Mutating the duplicate must not touch the source.
	c.Update(2, FieldBrandName, "changed")
	if c.Items()[0].BrandName != "Calcirol" {
		t.Error("mutating the duplicate changed the source item")
	}
}

func TestDuplicateOutOfBoundsIsNoOp(t *testing.T) {
	c := NewCollection(1)
	c.Duplicate(7)
	if c.Len() != 1 {
		t.Errorf("Len = %d after out-of-bounds duplicate, expected 1", c.Len())
	}
}

func TestUpdateRoutesThroughResolver(t *testing.T) {
	c := NewCollection(1)
	c.Update(0, FieldFormulationType, "Tablet")
	c.Update(0, FieldPacking, "10x10")
	c.Update(0, FieldFormulationType, "Syrup")

	it := c.Items()[0]
	if it.Packing != "" {
		t.Errorf("packing survived a formulation change through the collection: %q", it.Packing)
	}
}

func TestUpdateOutOfBoundsIsNoOp(t *testing.T) {
	c := NewCollection(1)
	before := c.Items()
	c.Update(3, FieldBrandName, "ghost")
	after := c.Items()
	if after[0] != before[0] || len(after) != len(before) {
		t.Error("out-of-bounds update changed the collection")
	}
}

func TestReplaceBypassesResolver(t *testing.T) {
	c := NewCollection(1)
	verbatim := NewItem()
	verbatim.FormulationType = "Tablet"
	verbatim.Packing = "10x10"

	c.Replace(0, verbatim)
	if c.Items()[0] != verbatim {
		t.Errorf("Replace did not install the item verbatim: %+v", c.Items()[0])
	}
}

func TestObserverSeesEveryMutationInOrder(t *testing.T) {
	c := NewCollection(1)
	var lengths []int
	c.SetObserver(func(items []Item) {
		lengths = append(lengths, len(items))
	})

	c.Add()          // 2
	c.Duplicate(0)   // 3
	c.Remove(2)      // 2
	c.Remove(5)      // no-op, no callback
	c.Update(0, FieldBrandName, "Calcirol") // 2

	expected := []int{2, 3, 2, 2}
	if len(lengths) != len(expected) {
		t.Fatalf("observer fired %d times, expected %d", len(lengths), len(expected))
	}
	for i, n := range expected {
		if lengths[i] != n {
			t.Errorf("callback %d saw %d items, expected %d", i, lengths[i], n)
		}
	}
}

func TestObserverReceivesCopy(t *testing.T) {
	c := NewCollection(1)
	var captured []Item
	c.SetObserver(func(items []Item) { captured = items })
	c.Update(0, FieldBrandName, "Calcirol")

	captured[0].BrandName = "mutated"
	if c.Items()[0].BrandName != "Calcirol" {
		t.Error("mutating the observed slice leaked into the collection")
	}
}
