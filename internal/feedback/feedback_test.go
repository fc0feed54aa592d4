package feedback

import "testing"

func TestClassifyTwoClause(t *testing.T) {
	items := Classify("Typos: succes -> success; Missing: a word")
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Category != CategoryTypo {
		t.Errorf("item 0 category = %q, want typo", items[0].Category)
	}
	if items[0].Detail != "succes -> success" {
		t.Errorf("item 0 detail = %q", items[0].Detail)
	}
	if items[1].Category != CategoryMissingWord {
		t.Errorf("item 1 category = %q, want missing_word", items[1].Category)
	}
	if items[1].Detail != "a word" {
		t.Errorf("item 1 detail = %q", items[1].Detail)
	}
}

func TestClassifyCategories(t *testing.T) {
	tests := []struct {
		clause string
		want   Category
	}{
		{"Typos: teh -> the", CategoryTypo},
		{"Missing key words: store", CategoryMissingWord},
		{"Missing articles/auxiliaries: the", CategoryMissingWord},
		{"Extra words: very", CategoryExtraWord},
		{"Spacing error - check for missing spaces between words", CategorySpacing},
		{"Good attempt", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.clause, func(t *testing.T) {
			items := Classify(tt.clause)
			if len(items) != 1 {
				t.Fatalf("got %d items, want 1", len(items))
			}
			if items[0].Category != tt.want {
				t.Errorf("category = %q, want %q", items[0].Category, tt.want)
			}
		})
	}
}

func TestClassifyDetailFallsBackToClause(t *testing.T) {
	items := Classify("Good attempt")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Detail != "Good attempt" {
		t.Errorf("detail = %q, want whole clause", items[0].Detail)
	}
	if items[0].Label != "Note" {
		t.Errorf("label = %q, want Note", items[0].Label)
	}
}

func TestClassifyDetailSplitsOnFirstColon(t *testing.T) {
	items := Classify("Typos: a: b")
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Detail != "a: b" {
		t.Errorf("detail = %q, want %q", items[0].Detail, "a: b")
	}
}

func TestClassifyEmpty(t *testing.T) {
	if items := Classify(""); items != nil {
		t.Errorf("empty feedback should yield no items, got %v", items)
	}
	if items := Classify("   "); items != nil {
		t.Errorf("whitespace feedback should yield no items, got %v", items)
	}
}
