package i18n

import "testing"

func TestTranslateEnglish(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("Init(en): %v", err)
	}

	if got := T("SetupSubject"); got != "Subject" {
		t.Errorf("T(SetupSubject) = %q, want 'Subject'", got)
	}
	if got := T("SummarySubmit"); got != "Submit" {
		t.Errorf("T(SummarySubmit) = %q, want 'Submit'", got)
	}
}

func TestTranslatePolish(t *testing.T) {
	if err := Init("pl"); err != nil {
		t.Fatalf("Init(pl): %v", err)
	}

	if got := T("SetupSubject"); got != "Przedmiot" {
		t.Errorf("T(SetupSubject) = %q, want 'Przedmiot'", got)
	}
	if got := T("SessionDiscarded"); got != "Sesja odrzucona" {
		t.Errorf("T(SessionDiscarded) = %q", got)
	}
}

func TestPluralTranslation(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("Init(en): %v", err)
	}
	if got := Tp("SummaryTasks", 1); got != "1 task recorded" {
		t.Errorf("Tp(SummaryTasks, 1) = %q", got)
	}
	if got := Tp("SummaryTasks", 5); got != "5 tasks recorded" {
		t.Errorf("Tp(SummaryTasks, 5) = %q", got)
	}
}

func TestPolishPluralForms(t *testing.T) {
	if err := Init("pl"); err != nil {
		t.Fatalf("Init(pl): %v", err)
	}
	if got := Tp("SummaryTasks", 1); got != "1 zadanie zapisane" {
		t.Errorf("Tp(SummaryTasks, 1) = %q", got)
	}
	if got := Tp("SummaryTasks", 3); got != "3 zadania zapisane" {
		t.Errorf("Tp(SummaryTasks, 3) = %q", got)
	}
	if got := Tp("SummaryTasks", 7); got != "7 zadań zapisanych" {
		t.Errorf("Tp(SummaryTasks, 7) = %q", got)
	}
}

func TestTemplateData(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("Init(en): %v", err)
	}
	got := Td("ActiveAutoIncrement", map[string]any{"To": "008"})
	if got != "next: 008" {
		t.Errorf("Td(ActiveAutoIncrement) = %q", got)
	}
}

func TestMissingIDFallsBack(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("Init(en): %v", err)
	}
	if got := T("NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("missing id = %q, want the id itself", got)
	}
}
