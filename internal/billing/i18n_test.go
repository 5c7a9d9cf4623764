package billing

import "testing"

func TestLabelsFor(t *testing.T) {
	en := LabelsFor(LangEnglish)
	si := LabelsFor(LangSinhala)
	ta := LabelsFor(LangTamil)

	if en.Total != "Total" || en.BilledTo != "Billed To" {
		t.Fatalf("unexpected english labels: %+v", en)
	}

	// All three locales must provide a complete, distinct label set.
	if si.Total == en.Total || ta.Total == en.Total || si.Total == ta.Total {
		t.Fatalf("total label not translated: en=%q si=%q ta=%q", en.Total, si.Total, ta.Total)
	}
	for _, l := range []Labels{en, si, ta} {
		if l.Invoice == "" || l.Subtotal == "" || l.Tax == "" || l.Discount == "" || l.Notes == "" {
			t.Fatalf("incomplete label set: %+v", l)
		}
	}
}

func TestLabelsFor_FallsBackToEnglish(t *testing.T) {
	if LabelsFor("fr") != LabelsFor(LangEnglish) {
		t.Fatal("unknown language should fall back to english")
	}
	if LabelsFor("") != LabelsFor(LangEnglish) {
		t.Fatal("empty language should fall back to english")
	}
}
