package validation

import "testing"

func TestDefaultCatalogInstruments(t *testing.T) {
	c := DefaultCatalog()

	instruments := c.Instruments()
	if len(instruments) != 12 {
		t.Fatalf("expected 12 instruments, got %d", len(instruments))
	}

	for _, name := range instruments {
		p, ok := c.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed for a listed instrument", name)
		}
		if p.Instrument != name {
			t.Errorf("Lookup(%q) returned pattern for %q", name, p.Instrument)
		}
		if p.Canonical == "" {
			t.Errorf("%s has no canonical form", name)
		}
		if len(p.Forms()) == 0 {
			t.Errorf("%s has no recognized forms", name)
		}
	}
}

func TestDefaultCatalogLookupUnknown(t *testing.T) {
	if _, ok := DefaultCatalog().Lookup("Sherman Act"); ok {
		t.Error("Lookup of an uncataloged instrument should fail")
	}
}

func TestCatalogFormsPreferredFirst(t *testing.T) {
	p, ok := DefaultCatalog().Lookup(InstrumentFairHousingAct)
	if !ok {
		t.Fatal("Fair Housing Act missing from catalog")
	}
	if !p.forms[0].preferred {
		t.Error("first form should be the preferred Bluebook form")
	}
}
