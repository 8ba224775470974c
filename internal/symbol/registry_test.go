package symbol

import "testing"

func TestNewRegistryReservesQAndInfinity(t *testing.T) {
	r := NewRegistry()
	if id, ok := r.Lookup(QName); !ok || id != QSymbol {
		t.Fatalf("expected %q to be reserved as QSymbol, got id=%v ok=%v", QName, id, ok)
	}
	if id, ok := r.Lookup(InfinityName); !ok || id != InfinitySymbol {
		t.Fatalf("expected %q to be reserved as InfinitySymbol, got id=%v ok=%v", InfinityName, id, ok)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after reserved names", r.Len())
	}
}

func TestInternIsIdempotent(t *testing.T) {
	r := NewRegistry()
	id1 := r.Intern("x")
	id2 := r.Intern("x")
	if id1 != id2 {
		t.Fatalf("interning the same name twice gave distinct ids: %v, %v", id1, id2)
	}
	if r.Name(id1) != "x" {
		t.Fatalf("Name(%v) = %q, want \"x\"", id1, r.Name(id1))
	}
}

func TestLookupMissingNameFails(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("never-interned"); ok {
		t.Fatal("expected Lookup to fail for a name never interned")
	}
}

func TestNamePanicsOnUnissuedId(t *testing.T) {
	r := NewRegistry()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Name to panic on an id this registry never issued")
		}
	}()
	r.Name(Id(999))
}
