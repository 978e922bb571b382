package catalog

import (
	"reflect"
	"testing"
)

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	defs := []ToolDefinition{
		{Name: "a", Operation: "x.y"},
		{Name: "a", Operation: "x.z"},
	}
	if _, err := NewRegistry(defs); err == nil {
		t.Fatalf("expected duplicate name error")
	}
}

func TestNewRegistryRejectsMissingOperation(t *testing.T) {
	if _, err := NewRegistry([]ToolDefinition{{Name: "a"}}); err == nil {
		t.Fatalf("expected missing operation error")
	}
}

func TestDefaultRegistryInvariants(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("building default registry: %v", err)
	}
	if reg.Len() == 0 {
		t.Fatalf("default registry is empty")
	}
	for _, def := range reg.List() {
		if def.Operation == "" {
			t.Fatalf("tool %s has no operation", def.Name)
		}
		if def.Credential == CredentialNone {
			found := false
			for _, p := range def.Params {
				if p.Name == "token" && p.Required {
					found = true
				}
			}
			if !found {
				t.Fatalf("tool %s has no credential and no token parameter", def.Name)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("building default registry: %v", err)
	}
	def, ok := reg.Lookup("slack_activate_or_modify_do_not_disturb_duration")
	if !ok {
		t.Fatalf("expected DND duration tool to be registered")
	}
	if def.Operation != "dnd.setSnooze" {
		t.Fatalf("unexpected operation %s", def.Operation)
	}
	if def.Credential != CredentialSecondary {
		t.Fatalf("DND tool should require the secondary credential")
	}
	if _, ok := reg.Lookup("does_not_exist"); ok {
		t.Fatalf("lookup of unregistered tool should fail")
	}
}

func TestListIsStable(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("building default registry: %v", err)
	}
	first := reg.List()
	second := reg.List()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("List returned different sequences across calls")
	}
	// Mutating the returned slice must not affect the registry.
	first[0].Name = "mutated"
	third := reg.List()
	if third[0].Name == "mutated" {
		t.Fatalf("List exposed internal state")
	}
}
