package entities

import "testing"

func q(id int64, fp string, status QuotationStatus) Quotation {
	return Quotation{ID: id, Fingerprint: fp, Status: status}
}

func TestProjectQuotations(t *testing.T) {
	t.Run("pending rows are hidden", func(t *testing.T) {
		view := ProjectQuotations([]Quotation{
			q(1, "|a", QuotationStatusPending),
			q(2, "|b", QuotationStatusConfirmed),
		})
		if len(view) != 1 || view[0].ID != 2 {
			t.Fatalf("unexpected view: %+v", view)
		}
	})

	t.Run("newest duplicate wins", func(t *testing.T) {
		view := ProjectQuotations([]Quotation{
			q(1, "|a", QuotationStatusConfirmed),
			q(2, "|a", QuotationStatusConfirmed),
		})
		if len(view) != 1 || view[0].ID != 2 {
			t.Fatalf("unexpected view: %+v", view)
		}
	})

	t.Run("confirmed outranks newer pending duplicate", func(t *testing.T) {
		view := ProjectQuotations([]Quotation{
			q(1, "|a", QuotationStatusConfirmed),
			q(2, "|a", QuotationStatusPending),
		})
		if len(view) != 1 || view[0].ID != 1 {
			t.Fatalf("expected confirmed id 1 to win, got %+v", view)
		}
	})

	t.Run("confirmed outranks newer disputed duplicate", func(t *testing.T) {
		view := ProjectQuotations([]Quotation{
			q(1, "|a", QuotationStatusConfirmed),
			q(2, "|a", QuotationStatusDisputed),
		})
		if len(view) != 1 || view[0].ID != 1 {
			t.Fatalf("expected confirmed id 1 to win, got %+v", view)
		}
	})

	t.Run("chronological order is preserved", func(t *testing.T) {
		view := ProjectQuotations([]Quotation{
			q(1, "|a", QuotationStatusConfirmed),
			q(2, "|b", QuotationStatusDisputed),
			q(3, "|c", QuotationStatusConfirmed),
		})
		if len(view) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(view))
		}
		for i, want := range []int64{1, 2, 3} {
			if view[i].ID != want {
				t.Fatalf("row %d: expected id %d, got %d", i, want, view[i].ID)
			}
		}
	})

	t.Run("newer pending duplicate hides a disputed row", func(t *testing.T) {
		view := ProjectQuotations([]Quotation{
			q(1, "|a", QuotationStatusDisputed),
			q(2, "|a", QuotationStatusPending),
		})
		// newest wins, and the newest is pending, so the row disappears
		if len(view) != 0 {
			t.Fatalf("expected empty view, got %+v", view)
		}
	})

	t.Run("empty log", func(t *testing.T) {
		if view := ProjectQuotations(nil); len(view) != 0 {
			t.Fatalf("expected empty view, got %+v", view)
		}
	})
}

func TestResolveReplacements(t *testing.T) {
	t.Run("most recent later confirmation replaces", func(t *testing.T) {
		repl := ResolveReplacements([]Quotation{
			q(1, "|a", QuotationStatusDisputed),
			q(2, "|b", QuotationStatusConfirmed),
			q(3, "|c", QuotationStatusConfirmed),
		})
		if repl[1] != 3 {
			t.Fatalf("expected 1 replaced by 3, got %v", repl)
		}
	})

	t.Run("earlier confirmation never replaces", func(t *testing.T) {
		repl := ResolveReplacements([]Quotation{
			q(1, "|a", QuotationStatusConfirmed),
			q(2, "|b", QuotationStatusDisputed),
		})
		if len(repl) != 0 {
			t.Fatalf("expected no replacements, got %v", repl)
		}
	})

	t.Run("disputing the replacement reopens the pairing", func(t *testing.T) {
		repl := ResolveReplacements([]Quotation{
			q(1, "|a", QuotationStatusDisputed),
			q(2, "|b", QuotationStatusDisputed),
			q(3, "|c", QuotationStatusConfirmed),
		})
		if repl[1] != 3 || repl[2] != 3 {
			t.Fatalf("expected both disputes replaced by 3, got %v", repl)
		}
	})
}

func TestProjectWithReplacements(t *testing.T) {
	rows := ProjectWithReplacements([]Quotation{
		q(1, "|a", QuotationStatusDisputed),
		q(2, "|b", QuotationStatusConfirmed),
	})
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !rows[0].Replaced || rows[0].ReplacedByID != 2 {
		t.Fatalf("expected row 1 replaced by 2, got %+v", rows[0])
	}
	if rows[1].Replaced {
		t.Fatalf("expected row 2 not replaced, got %+v", rows[1])
	}
}

func TestLatestPending(t *testing.T) {
	t.Run("newest pending wins", func(t *testing.T) {
		target, ok := LatestPending([]Quotation{
			q(1, "|a", QuotationStatusPending),
			q(2, "|b", QuotationStatusConfirmed),
			q(3, "|c", QuotationStatusPending),
		})
		if !ok || target.ID != 3 {
			t.Fatalf("expected id 3, got %+v ok=%v", target, ok)
		}
	})

	t.Run("nothing pending", func(t *testing.T) {
		_, ok := LatestPending([]Quotation{q(1, "|a", QuotationStatusConfirmed)})
		if ok {
			t.Fatalf("expected no pending target")
		}
	})
}
